package apperrors

import "errors"

// Error kinds. Every failure the engine surfaces wraps exactly one of these
// so callers can branch with errors.Is without parsing messages.
var (
	// ErrNotFound signals a missing offering, student, ledger row or catalog entity.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals a duplicate offering code, an overlapping schedule or a
	// uniqueness race lost at commit time.
	ErrConflict = errors.New("conflict")

	// ErrValidation signals malformed input: score out of range, bad meeting
	// interval, missing required field.
	ErrValidation = errors.New("validation failed")

	// ErrHasDependents signals a delete blocked by graded ledger rows.
	ErrHasDependents = errors.New("has dependent records")

	// ErrTransient signals a storage or transaction failure the caller may retry.
	ErrTransient = errors.New("transient storage failure")
)

// CustomError carries an error kind plus human-readable context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError creates a NotFound error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a Conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewValidationError creates a Validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewHasDependentsError creates a HasDependents error with a message.
func NewHasDependentsError(message string) error {
	return &CustomError{Err: ErrHasDependents, Message: message}
}

// NewTransientError creates a Transient error wrapping the storage cause.
func NewTransientError(cause error, message string) error {
	return &CustomError{Err: errors.Join(ErrTransient, cause), Message: message}
}

// Is reports whether err matches target or any error in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
