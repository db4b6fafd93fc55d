package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
)

// AdminTokenHeader carries the shared admin secret.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuthMiddleware creates a Gin middleware that validates the
// X-Admin-Token header against the configured admin token. An unset token
// locks the admin endpoints entirely.
func AdminAuthMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			abort(c, apperrors.ErrUnauthorized)
			return
		}
		key := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(adminToken)) != 1 {
			abort(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}
