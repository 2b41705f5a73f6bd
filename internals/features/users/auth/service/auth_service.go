package service

import (
	"errors"

	"gorm.io/gorm"

	authHelper "quizku_backend/internals/features/users/auth/helper"
	"quizku_backend/internals/features/users/auth/model"
	authRepo "quizku_backend/internals/features/users/auth/repository"
)

var (
	ErrEmailTaken = errors.New("email address already registered")
	// Deliberately undifferentiated: never reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email address or password")
)

// Register stores a new user with a bcrypt hash of the password.
func Register(db *gorm.DB, email, password string) (*model.UserModel, error) {
	if _, err := authRepo.FindUserByEmail(db, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.UserModel{
		EmailAddress: email,
		Password:     hashed,
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		// Unique-constraint backstop for racing registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token on success.
func Login(db *gorm.DB, email, password string) (string, error) {
	user, err := authRepo.FindUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return IssueAccessToken(user.ID, user.EmailAddress)
}
