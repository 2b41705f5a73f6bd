package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	authService "quizku_backend/internals/features/users/auth/service"
	helper "quizku_backend/internals/helpers"
)

// Locals keys set on successful authentication.
const (
	LocalsUserID    = "user_id"
	LocalsUserEmail = "user_email"
)

// AuthMiddleware rejects requests without a valid bearer token. Expired and
// invalid tokens get distinct messages so clients know when to re-login.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helper.ExtractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}

		claims, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, authService.ErrTokenExpired) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsUserEmail, claims.Email)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves identity when a valid token is present and
// degrades to anonymous on any verification failure.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helper.ExtractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		claims, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			log.Printf("[INFO] optional auth: ignoring bad token (%v)", err)
			return c.Next()
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsUserEmail, claims.Email)
		return c.Next()
	}
}

// UserIDFromLocals reads the authenticated user id, if any.
func UserIDFromLocals(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalsUserID).(uint)
	return id, ok
}

// EmailFromLocals reads the authenticated user email, if any.
func EmailFromLocals(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalsUserEmail).(string)
	return email
}
