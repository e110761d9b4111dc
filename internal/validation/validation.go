// Package validation wraps go-playground/validator so use cases and the
// HTTP layer report failures the same way.
package validation

import (
	"reflect"
	"strings"
	"sync"

	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Instance returns the shared validator. Field names in messages use the
// json tag so they match the request body.
func Instance() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return instance
}

// Struct validates v and returns ErrValidationFailed with one detail line per
// failing field.
func Struct(v any) error {
	err := Instance().Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.Find[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate")
	}

	return domainerrors.ErrValidationFailed.WithDetails(Describe(fieldErrs))
}

// Describe renders field errors as "field: rule" pairs.
func Describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}

// Failed builds a validation error for rules the struct tags cannot express.
func Failed(field, reason string) error {
	return domainerrors.ErrValidationFailed.WithDetails(field + ": " + reason)
}
