// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a new CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate validates the given struct against its `validate` tags.
//
//nolint:wrapcheck // Echo surfaces the validation error directly to the handler.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
