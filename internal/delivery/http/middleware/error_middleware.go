package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-intake-backend/internal/delivery/http/response"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/logger"
)

// ErrorHandler renders errors attached to the context as the response
// envelope. It is the outermost failure boundary of a handler: anything
// that is not an AppError is logged in full server-side and surfaces as
// a generic 500, so no fault detail leaks and no fault crashes the
// process.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed", "code", appErr.Code, "error", appErr.Err, "request_id", c.GetString(RequestIDKey))
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected handler error", "error", err, "request_id", c.GetString(RequestIDKey))
		response.Error(c, http.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
	}
}
