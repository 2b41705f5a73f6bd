package controller

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quiz/dto"
	"quizku_backend/internals/features/quiz/service"
	helper "quizku_backend/internals/helpers"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// Start handles POST /quiz/start. Authentication is optional: a valid token
// links the attempt to the user, anything else runs anonymously.
func (qc *QuizController) Start(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	var userID *uint
	userEmail := ""
	if id, ok := authMiddleware.UserIDFromLocals(c); ok {
		userID = &id
		userEmail = authMiddleware.EmailFromLocals(c)
	}

	resp, err := qc.Service.Start(req.Attempts, userID, userEmail)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAttempts) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Attempts must be between 1 and 20")
		}
		log.Printf("[ERROR] quiz start: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start quiz")
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Answer handles POST /quiz/answer.
func (qc *QuizController) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session ID is required")
	}
	if req.Answer == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Answer is required")
	}

	answer, err := coerceAnswer(req.Answer)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Answer must be a number")
	}

	next, done, err := qc.Service.SubmitAnswer(req.SessionID, answer)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session. Please start a new quiz.")
		}
		log.Printf("[ERROR] quiz answer: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit answer")
	}

	if done != nil {
		return c.Status(fiber.StatusOK).JSON(done)
	}
	return c.Status(fiber.StatusOK).JSON(next)
}

// Status handles GET /quiz/status/:session_id, keyed by the same session
// identifier as start and answer.
func (qc *QuizController) Status(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("session_id"))
	if sessionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session ID is required")
	}

	resp, err := qc.Service.Status(sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No active quiz session")
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// History handles GET /user/history (authenticated).
func (qc *QuizController) History(c *fiber.Ctx) error {
	userID, ok := authMiddleware.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required to view history")
	}

	resp, err := qc.Service.History(userID)
	if err != nil {
		log.Printf("[ERROR] quiz history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load history")
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// coerceAnswer accepts the answer as a JSON number or a numeric string and
// rejects everything that is not a whole integer.
func coerceAnswer(v interface{}) (int, error) {
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, errors.New("answer is not an integer")
		}
		return int(val), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(val))
	default:
		return 0, errors.New("answer is not a number")
	}
}
