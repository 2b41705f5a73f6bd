package model

import (
	"time"

	"gorm.io/datatypes"

	userModel "quizku_backend/internals/features/users/auth/model"
)

// QuizSessionModel represents the quiz_sessions table: one summary row per
// completed quiz attempt. Rows for authenticated users are inserted as a
// shell at quiz start and finalized once, at completion.
type QuizSessionModel struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	SessionID string               `gorm:"size:36;uniqueIndex;not null" json:"session_id"`
	UserID    *uint                `gorm:"index" json:"user_id,omitempty"`
	User      *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	TotalQuestions int     `gorm:"not null" json:"total_questions"`
	CorrectAnswers int     `gorm:"not null;default:0" json:"correct_answers"`
	TimeTaken      float64 `gorm:"not null;default:0" json:"time_taken"`
	Accuracy       float64 `gorm:"not null;default:0" json:"accuracy"`

	// Per-question breakdown, filled at completion.
	Questions datatypes.JSON `gorm:"type:jsonb" json:"questions,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizSessionModel) TableName() string {
	return "quiz_sessions"
}

// QuestionResult is one element of the Questions JSONB column.
type QuestionResult struct {
	Question      string `json:"question"`
	GivenAnswer   int    `json:"given_answer"`
	CorrectAnswer int    `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}
