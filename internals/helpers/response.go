package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Error response: the API contract uses a flat {"error": "..."} body.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// ✅ Message-only success response (register etc.)
func JsonMessage(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// ✅ Validator.v10 errors rendered as one short message per the contract.
// Never echoes raw internal error text to the client.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErr := ve[0]
	switch fieldErr.Tag() {
	case "required":
		return JsonError(c, fiber.StatusBadRequest, "Email address and password are required")
	case "email":
		return JsonError(c, fiber.StatusBadRequest, "Invalid email address format")
	default:
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
}
