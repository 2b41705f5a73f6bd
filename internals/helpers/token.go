package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrNoToken = errors.New("missing authorization token")

// ExtractBearerToken reads the Authorization header. A bare token (no
// "Bearer " prefix) is accepted too, matching what existing clients send.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		return "", ErrNoToken
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return "", ErrNoToken
	}
	return raw, nil
}
