package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/configs"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenClaims are the access-token claims carried for the lifetime of a login.
type TokenClaims struct {
	UserID uint
	Email  string
}

// IssueAccessToken signs a time-scoped HS256 bearer token for the user.
func IssueAccessToken(userID uint, email string) (string, error) {
	return issueToken(userID, email, configs.TokenTTL)
}

func issueToken(userID uint, email string, ttl time.Duration) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken verifies signature and expiry. Expired and otherwise
// invalid tokens are reported distinctly so callers can prompt re-login.
func ParseAccessToken(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: uint(rawID), Email: email}, nil
}
