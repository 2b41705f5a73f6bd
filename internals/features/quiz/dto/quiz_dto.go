package dto

import (
	"encoding/json"
	"time"
)

// StartQuizRequest is the body of POST /quiz/start. Attempts defaults to 5
// when omitted.
type StartQuizRequest struct {
	Attempts *int `json:"attempts"`
}

// AnswerRequest is the body of POST /quiz/answer. Answer is kept loose here
// because clients send it both as a number and as a string; the controller
// coerces it to an integer.
type AnswerRequest struct {
	SessionID string      `json:"session_id"`
	Answer    interface{} `json:"answer"`
}

type StartQuizResponse struct {
	SessionID      string `json:"session_id"`
	Question       string `json:"question"`
	QuestionNumber int    `json:"question_number"`
	TotalQuestions int    `json:"total_questions"`
	Message        string `json:"message"`
}

// NextQuestionResponse is returned while the quiz is still in progress.
type NextQuestionResponse struct {
	Question       string `json:"question"`
	QuestionNumber int    `json:"question_number"`
	TotalQuestions int    `json:"total_questions"`
	Correct        bool   `json:"correct"`
	Feedback       string `json:"feedback"`
}

// CompletionResponse is returned by the final answer submission.
type CompletionResponse struct {
	Message        string  `json:"message"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Accuracy       float64 `json:"accuracy"`
	TimeTaken      float64 `json:"time_taken"`
	TimeUnit       string  `json:"time_unit"`
}

type StatusResponse struct {
	CurrentQuestion   int     `json:"current_question"`
	TotalQuestions    int     `json:"total_questions"`
	QuestionsAnswered int     `json:"questions_answered"`
	CorrectAnswers    int     `json:"correct_answers"`
	ElapsedTime       float64 `json:"elapsed_time"`
	TimeUnit          string  `json:"time_unit"`
}

type HistoryItem struct {
	SessionID      string          `json:"session_id"`
	TotalQuestions int             `json:"total_questions"`
	CorrectAnswers int             `json:"correct_answers"`
	Accuracy       float64         `json:"accuracy"`
	TimeTaken      float64         `json:"time_taken"`
	Questions      json.RawMessage `json:"questions,omitempty"`
	Date           time.Time       `json:"date"`
}

type HistoryResponse struct {
	History         []HistoryItem `json:"history"`
	OverallAccuracy float64       `json:"overall_accuracy"`
	TotalSessions   int           `json:"total_sessions"`
}
