package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(id string) *LiveQuizState {
	return &LiveQuizState{
		SessionID:       id,
		TotalQuestions:  5,
		CurrentQuestion: 1,
		StartedAt:       time.Now(),
	}
}

func TestPutGetDelete(t *testing.T) {
	s := NewSessionStore()
	s.Put(newState("a"))

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.SessionID)
	assert.Equal(t, 1, s.Len())

	_, ok = s.Get("missing")
	assert.False(t, ok)

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMutateNotFound(t *testing.T) {
	s := NewSessionStore()
	err := s.Mutate("nope", func(*LiveQuizState) (bool, error) {
		t.Fatal("fn must not run for a missing session")
		return false, nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutateRemoveEndsSession(t *testing.T) {
	s := NewSessionStore()
	s.Put(newState("a"))

	err := s.Mutate("a", func(st *LiveQuizState) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)

	err = s.Mutate("a", func(*LiveQuizState) (bool, error) { return false, nil })
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok := s.Get("a")
	assert.False(t, ok)
}

// Duplicate submissions for the same session must serialize: no lost updates.
func TestMutateConcurrentNoLostUpdates(t *testing.T) {
	s := NewSessionStore()
	s.Put(newState("a"))

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = s.Mutate("a", func(st *LiveQuizState) (bool, error) {
				st.QuestionsAnswered++
				return false, nil
			})
		}()
	}
	wg.Wait()

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, workers, got.QuestionsAnswered)
}

func TestSweepIdleEvictsOnlyStale(t *testing.T) {
	s := NewSessionStore()
	s.Put(newState("stale"))
	s.Put(newState("fresh"))

	// Backdate one session past the TTL.
	sh := s.shardFor("stale")
	sh.mu.Lock()
	sh.entries["stale"].state.LastTouched = time.Now().Add(-time.Hour)
	sh.mu.Unlock()

	removed := s.SweepIdle(30 * time.Minute)
	assert.Equal(t, 1, removed)

	_, ok := s.Get("stale")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}
