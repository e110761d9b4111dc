package errors

import (
	"net/http"

	"careadmin/internal/errors"
)

// Kind groups application errors by how a caller should react to them.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindInternal      Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same error code, so a copy made by
// WithDetails still matches the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not found
	ErrNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"NOT_FOUND", "Resource not found")
	ErrCatalogKindNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"CATALOG_KIND_NOT_FOUND", "Unknown catalog")
	ErrCatalogEntryNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found")
	ErrCaredPersonNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"CARED_PERSON_NOT_FOUND", "Cared person not found")
	ErrRecordNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"RECORD_NOT_FOUND", "Record not found")
	ErrPackageNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"PACKAGE_NOT_FOUND", "Package not found")

	// Validation. Duplicates keep the validation kind but answer 409.
	ErrValidationFailed = NewBaseError(KindValidation, http.StatusUnprocessableEntity,
		"VALIDATION_FAILED", "Input validation failed")
	ErrDuplicate = NewBaseError(KindValidation, http.StatusConflict,
		"DUPLICATE", "A record with the same unique key already exists")
	ErrInvalidReference = NewBaseError(KindValidation, http.StatusUnprocessableEntity,
		"INVALID_REFERENCE", "Referenced record does not exist or is still referenced")
	ErrConstraintViolation = NewBaseError(KindValidation, http.StatusUnprocessableEntity,
		"CONSTRAINT_VIOLATION", "Input violates a data constraint")

	// Authorization
	ErrUnauthorized = NewBaseError(KindAuthorization, http.StatusUnauthorized,
		"UNAUTHORIZED", "Authentication required")
	ErrForbidden = NewBaseError(KindAuthorization, http.StatusForbidden,
		"FORBIDDEN", "Access denied")

	// Internal
	ErrTransactionFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"TRANSACTION_FAILED", "Database transaction failed")
	ErrInternalError = NewBaseError(KindInternal, http.StatusInternalServerError,
		"INTERNAL_ERROR", "Internal error")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	if appErr, ok := errors.Find[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}

// IsNotFound reports whether err is a NotFound application error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a Validation application error
// (bad input, duplicates and reference violations).
func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// IsAuthorization reports whether err is an Authorization application error.
func IsAuthorization(err error) bool {
	return err != nil && KindOf(err) == KindAuthorization
}
