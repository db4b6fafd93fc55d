package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/auth"
	apperrors "bookkeeper/internal/errors"
)

// Context keys set by AuthMiddleware.
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// AuthMiddleware verifies the bearer token and sets the caller's ID and email
// in the context. Every failure yields the same UNAUTHORIZED body.
func AuthMiddleware(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abort(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			abort(c, apperrors.ErrUnauthorized)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}
