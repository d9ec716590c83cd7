// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New builds the request validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks struct tags on request DTOs.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
