package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quiz/dto"
	"quizku_backend/internals/features/quiz/generator"
	"quizku_backend/internals/features/quiz/model"
	quizRepo "quizku_backend/internals/features/quiz/repository"
	"quizku_backend/internals/features/quiz/store"
)

const (
	MinAttempts     = 1
	MaxAttempts     = 20
	DefaultAttempts = 5

	timeUnit = "seconds"
)

var (
	ErrInvalidAttempts = errors.New("attempts must be between 1 and 20")
	ErrSessionNotFound = store.ErrNotFound
)

// QuizService owns the live session store and the quiz state machine:
// NotStarted → InProgress(k of N) → Completed.
type QuizService struct {
	DB       *gorm.DB
	Sessions *store.SessionStore
	Gen      *generator.Generator
}

func NewQuizService(db *gorm.DB, sessions *store.SessionStore, gen *generator.Generator) *QuizService {
	return &QuizService{DB: db, Sessions: sessions, Gen: gen}
}

// Start validates the attempts range, creates the live state and, for
// authenticated users, the persistent shell record.
func (s *QuizService) Start(attempts *int, userID *uint, userEmail string) (*dto.StartQuizResponse, error) {
	total := DefaultAttempts
	if attempts != nil {
		total = *attempts
	}
	if total < MinAttempts || total > MaxAttempts {
		return nil, ErrInvalidAttempts
	}

	sessionID := uuid.NewString()
	question, answer := s.Gen.Question()

	if userID != nil {
		if err := quizRepo.CreateSessionShell(s.DB, sessionID, *userID, total); err != nil {
			return nil, err
		}
	}

	s.Sessions.Put(&store.LiveQuizState{
		SessionID:       sessionID,
		UserID:          userID,
		UserEmail:       userEmail,
		TotalQuestions:  total,
		CurrentQuestion: 1,
		PendingQuestion: question,
		PendingAnswer:   answer,
		StartedAt:       time.Now(),
	})

	return &dto.StartQuizResponse{
		SessionID:      sessionID,
		Question:       question,
		QuestionNumber: 1,
		TotalQuestions: total,
		Message:        fmt.Sprintf("Quiz started with %d questions", total),
	}, nil
}

// SubmitAnswer advances the state machine by one question. Exactly one of
// the two responses is non-nil: the next question while in progress, or the
// completion summary on the final answer.
func (s *QuizService) SubmitAnswer(sessionID string, answer int) (*dto.NextQuestionResponse, *dto.CompletionResponse, error) {
	var next *dto.NextQuestionResponse
	var done *dto.CompletionResponse

	err := s.Sessions.Mutate(sessionID, func(state *store.LiveQuizState) (bool, error) {
		correct := answer == state.PendingAnswer
		state.QuestionsAnswered++
		if correct {
			state.CorrectAnswers++
		}
		state.Results = append(state.Results, model.QuestionResult{
			Question:      state.PendingQuestion,
			GivenAnswer:   answer,
			CorrectAnswer: state.PendingAnswer,
			Correct:       correct,
		})
		state.CurrentQuestion++

		if state.CurrentQuestion > state.TotalQuestions {
			done = s.complete(state)
			return true, nil
		}

		question, pending := s.Gen.Question()
		state.PendingQuestion = question
		state.PendingAnswer = pending

		feedback := "Wrong answer!"
		if correct {
			feedback = "Correct!"
		}
		next = &dto.NextQuestionResponse{
			Question:       question,
			QuestionNumber: state.CurrentQuestion,
			TotalQuestions: state.TotalQuestions,
			Correct:        correct,
			Feedback:       feedback,
		}
		return false, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return next, done, nil
}

// complete computes the final summary and performs the best-effort ledger
// write-back. A persistence failure is logged and never fails the request:
// the caller still gets the summary computed from memory.
func (s *QuizService) complete(state *store.LiveQuizState) *dto.CompletionResponse {
	timeTaken := round2(time.Since(state.StartedAt).Seconds())
	accuracy := round2(float64(state.CorrectAnswers) / float64(state.TotalQuestions) * 100)

	persisted := false
	if state.UserID != nil {
		detail, err := json.Marshal(state.Results)
		if err == nil {
			err = quizRepo.FinalizeSession(s.DB, state.SessionID, state.CorrectAnswers, timeTaken, accuracy, detail)
		}
		if err != nil {
			log.Printf("[ERROR] quiz %s completed but write-back failed: %v", state.SessionID, err)
		} else {
			persisted = true
		}
	}
	log.Printf("[INFO] quiz %s completed: %d/%d, persisted=%v", state.SessionID, state.CorrectAnswers, state.TotalQuestions, persisted)

	return &dto.CompletionResponse{
		Message:        "Quiz finished",
		Score:          state.CorrectAnswers,
		TotalQuestions: state.TotalQuestions,
		Accuracy:       accuracy,
		TimeTaken:      timeTaken,
		TimeUnit:       timeUnit,
	}
}

// Status reports live progress, keyed by session id like every other quiz
// operation.
func (s *QuizService) Status(sessionID string) (*dto.StatusResponse, error) {
	state, ok := s.Sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &dto.StatusResponse{
		CurrentQuestion:   state.CurrentQuestion,
		TotalQuestions:    state.TotalQuestions,
		QuestionsAnswered: state.QuestionsAnswered,
		CorrectAnswers:    state.CorrectAnswers,
		ElapsedTime:       round2(time.Since(state.StartedAt).Seconds()),
		TimeUnit:          timeUnit,
	}, nil
}

// History returns the user's completed sessions newest-first plus the mean
// of the per-session accuracies (0 when there are none).
func (s *QuizService) History(userID uint) (*dto.HistoryResponse, error) {
	records, err := quizRepo.FindByUser(s.DB, userID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryItem, 0, len(records))
	totalAccuracy := 0.0
	for _, r := range records {
		history = append(history, dto.HistoryItem{
			SessionID:      r.SessionID,
			TotalQuestions: r.TotalQuestions,
			CorrectAnswers: r.CorrectAnswers,
			Accuracy:       r.Accuracy,
			TimeTaken:      r.TimeTaken,
			Questions:      json.RawMessage(r.Questions),
			Date:           r.CreatedAt,
		})
		totalAccuracy += r.Accuracy
	}

	overall := 0.0
	if len(records) > 0 {
		overall = round2(totalAccuracy / float64(len(records)))
	}

	return &dto.HistoryResponse{
		History:         history,
		OverallAccuracy: overall,
		TotalSessions:   len(records),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
