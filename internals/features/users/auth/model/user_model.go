package model

import (
	"time"
)

// UserModel represents the users table
type UserModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmailAddress string    `gorm:"size:120;uniqueIndex;not null" json:"email_address" validate:"required,email"`
	Password     string    `gorm:"size:255;not null" json:"-" validate:"required"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName keeps the table name aligned with the database schema
func (UserModel) TableName() string {
	return "users"
}
