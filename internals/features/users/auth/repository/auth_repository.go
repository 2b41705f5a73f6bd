package repository

import (
	"gorm.io/gorm"

	"quizku_backend/internals/features/users/auth/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("email_address = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uint) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *model.UserModel) error {
	return db.Create(user).Error
}
