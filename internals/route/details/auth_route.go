package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizku_backend/internals/features/users/auth/controller"
	"quizku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	app.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	app.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
