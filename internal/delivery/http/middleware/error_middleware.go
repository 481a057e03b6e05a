package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
)

// ErrorHandler maps errors appended to the gin context onto the response
// envelope. Anything that is not an AppError collapses to a masked 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err)
			}
			var detail interface{}
			if len(appErr.Fields) > 0 {
				detail = appErr.Fields
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
