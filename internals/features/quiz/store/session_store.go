package store

import (
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"quizku_backend/internals/features/quiz/model"
)

var ErrNotFound = errors.New("quiz session not found")

// LiveQuizState is the transient progress of one in-flight quiz attempt.
// It exists only between Start and the final SubmitAnswer.
type LiveQuizState struct {
	SessionID string
	UserID    *uint
	UserEmail string

	TotalQuestions    int
	CurrentQuestion   int // 1-based
	CorrectAnswers    int
	QuestionsAnswered int

	PendingQuestion string
	PendingAnswer   int
	Results         []model.QuestionResult

	StartedAt   time.Time
	LastTouched time.Time
}

const shardCount = 16

// SessionStore holds live quiz state keyed by session id. Entries in
// different shards never contend; mutations of the same session serialize on
// a per-entry mutex so duplicate submits cannot lose updates.
type SessionStore struct {
	shards [shardCount]shard
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	removed bool
	state   *LiveQuizState
}

func NewSessionStore() *SessionStore {
	s := &SessionStore{}
	for i := range s.shards {
		s.shards[i].entries = make(map[string]*entry)
	}
	return s
}

func (s *SessionStore) shardFor(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.shards[h.Sum32()%shardCount]
}

// Put registers a freshly started session.
func (s *SessionStore) Put(state *LiveQuizState) {
	state.LastTouched = time.Now()
	sh := s.shardFor(state.SessionID)
	sh.mu.Lock()
	sh.entries[state.SessionID] = &entry{state: state}
	sh.mu.Unlock()
}

// Get returns a copy of the state, so callers cannot mutate it unlocked.
func (s *SessionStore) Get(id string) (LiveQuizState, bool) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	e, ok := sh.entries[id]
	sh.mu.Unlock()
	if !ok {
		return LiveQuizState{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return LiveQuizState{}, false
	}
	e.state.LastTouched = time.Now()
	return *e.state, true
}

// Mutate runs fn under the per-session lock. When fn reports remove the
// session is taken out of the store in the same critical section, so a
// concurrent duplicate submit observes ErrNotFound instead of a stale state.
func (s *SessionStore) Mutate(id string, fn func(state *LiveQuizState) (remove bool, err error)) error {
	sh := s.shardFor(id)
	sh.mu.Lock()
	e, ok := sh.entries[id]
	sh.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return ErrNotFound
	}

	e.state.LastTouched = time.Now()
	remove, err := fn(e.state)
	if err != nil {
		return err
	}
	if remove {
		e.removed = true
		sh.mu.Lock()
		delete(sh.entries, id)
		sh.mu.Unlock()
	}
	return nil
}

// Delete discards a session outright.
func (s *SessionStore) Delete(id string) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	e, ok := sh.entries[id]
	if ok {
		delete(sh.entries, id)
	}
	sh.mu.Unlock()
	if ok {
		e.mu.Lock()
		e.removed = true
		e.mu.Unlock()
	}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.entries)
		sh.mu.Unlock()
	}
	return n
}

// SweepIdle evicts sessions untouched for longer than ttl and returns how
// many were removed. Abandoned quizzes would otherwise live forever.
func (s *SessionStore) SweepIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	removed := 0

	for i := range s.shards {
		sh := &s.shards[i]

		sh.mu.Lock()
		candidates := make([]*entry, 0, len(sh.entries))
		for _, e := range sh.entries {
			candidates = append(candidates, e)
		}
		sh.mu.Unlock()

		for _, e := range candidates {
			e.mu.Lock()
			stale := !e.removed && e.state.LastTouched.Before(cutoff)
			if stale {
				e.removed = true
			}
			id := e.state.SessionID
			e.mu.Unlock()

			if stale {
				sh.mu.Lock()
				delete(sh.entries, id)
				sh.mu.Unlock()
				removed++
			}
		}
	}
	return removed
}
