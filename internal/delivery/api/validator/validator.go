// Package validator adapts the shared validator to echo.Validator.
package validator

import (
	"careadmin/internal/validation"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct{}

// New returns the echo validator.
func New() *CustomValidator {
	return &CustomValidator{}
}

// Validate runs the struct tags of i and returns a domain validation error.
func (cv *CustomValidator) Validate(i any) error {
	return validation.Struct(i)
}
