package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/dto"
)

// GenericErrorMessage is shown for failures that carry no client-safe message.
const GenericErrorMessage = "An error occurred. Please try again."

// ErrorHandler renders the last error attached with c.Error as
// {status:"error", message}. It is the only place errors become responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger := GetLoggerFromCtx(c.Request.Context())

		if c.Writer.Written() {
			logger.Error("Error after response was written", slog.String("error", err.Error()))
			return
		}

		status, message := Render(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		}
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Status: "error", Message: message})
	}
}

// Render picks the status and client message for err.
func Render(err error) (int, string) {
	if appErr, ok := apperrors.As(err); ok {
		status := appErr.Code
		if status == 0 {
			status = http.StatusInternalServerError
		}
		if appErr.Message == "" {
			return status, GenericErrorMessage
		}
		return status, appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "Invalid request."
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "Resource already exists."
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized."
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "Forbidden."
	case errors.Is(err, apperrors.ErrTooManyRequests):
		return http.StatusTooManyRequests, "Too many requests. Please try again later."
	}
	return http.StatusInternalServerError, GenericErrorMessage
}
