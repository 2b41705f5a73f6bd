package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quiz/store"
	routeDetails "quizku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, sessions *store.SessionStore) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	routeDetails.QuizRoutes(app, db, sessions)
}
