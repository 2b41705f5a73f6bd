package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "quizku_backend/internals/features/quiz/controller"
	"quizku_backend/internals/features/quiz/generator"
	quizService "quizku_backend/internals/features/quiz/service"
	"quizku_backend/internals/features/quiz/store"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func QuizRoutes(app *fiber.App, db *gorm.DB, sessions *store.SessionStore) {
	svc := quizService.NewQuizService(db, sessions, generator.New())
	ctrl := quizController.NewQuizController(svc)

	// Starting a quiz works with or without a token.
	app.Post("/quiz/start", authMiddleware.OptionalAuthMiddleware(), ctrl.Start)
	app.Post("/quiz/answer", ctrl.Answer)
	app.Get("/quiz/status/:session_id", ctrl.Status)

	app.Get("/user/history", authMiddleware.AuthMiddleware(), ctrl.History)
}
