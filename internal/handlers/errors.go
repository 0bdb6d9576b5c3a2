package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

const msgMissingFields = "Missing required fields"

// respondError maps err to its status. Server errors are logged with their
// detail and answered with fallback only.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}

	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: msg})
}

// bindingErrorMessage turns a request binding failure into a caller-facing message.
// Missing fields are reported before invalid values.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return msgMissingFields
		}
	}
	for _, fe := range verrs {
		if fe.Tag() == terminalStatusTag {
			return "Invalid status. Must be 'active' or 'inactive'"
		}
	}
	return "Invalid " + verrs[0].Field()
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}
