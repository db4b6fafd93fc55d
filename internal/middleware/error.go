package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code and message; unexpected errors are logged and return a generic
// internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, errorBody(appErr))
	}
}

// errorBody renders {"error": CODE, "message"?, "details"?}. Details carry
// the internal cause of 5xx errors and are withheld in release mode.
func errorBody(appErr *apperrors.AppError) gin.H {
	body := gin.H{"error": appErr.Code}
	if appErr.Message != "" {
		body["message"] = appErr.Message
	}
	if appErr.StatusCode >= 500 && appErr.Internal != nil && gin.Mode() != gin.ReleaseMode {
		body["details"] = appErr.Internal.Error()
	}
	return body
}

// abort records err for ErrorHandler and stops the chain.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
