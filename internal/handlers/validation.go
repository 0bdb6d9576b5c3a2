package handlers

import (
	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const terminalStatusTag = "terminal_status"

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation(terminalStatusTag, func(fl validator.FieldLevel) bool {
		return domain.TerminalStatus(fl.Field().String()).IsValid()
	})
}
