package repository

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quiz/model"
)

// CreateSessionShell inserts the zeroed summary row at quiz start for an
// authenticated user. Final figures are written once, at completion.
func CreateSessionShell(db *gorm.DB, sessionID string, userID uint, totalQuestions int) error {
	record := &model.QuizSessionModel{
		SessionID:      sessionID,
		UserID:         &userID,
		TotalQuestions: totalQuestions,
	}
	return db.Create(record).Error
}

// FinalizeSession writes the completed score into the shell row.
func FinalizeSession(db *gorm.DB, sessionID string, correct int, timeTaken, accuracy float64, questions datatypes.JSON) error {
	return db.Model(&model.QuizSessionModel{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"correct_answers": correct,
			"time_taken":      timeTaken,
			"accuracy":        accuracy,
			"questions":       questions,
		}).Error
}

// FindByUser returns the user's completed sessions, newest first.
func FindByUser(db *gorm.DB, userID uint) ([]model.QuizSessionModel, error) {
	var records []model.QuizSessionModel
	if err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
