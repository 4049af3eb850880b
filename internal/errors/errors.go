package errors

import (
	"errors"
	"fmt"
	"time"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a structural or field-level validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StateConflictError represents an invalid occurrence status transition
type StateConflictError struct {
	Message string
}

func (e *StateConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for StateConflictError
func (e *StateConflictError) Is(target error) bool {
	t, ok := target.(*StateConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// InvalidOccurrenceDateError is returned when a date-keyed operation targets
// a date that does not fall on the rule's weekday or precedes its start date
type InvalidOccurrenceDateError struct {
	Date    time.Time
	Message string
}

func (e *InvalidOccurrenceDateError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("invalid occurrence date: %s", e.Message)
	}
	return fmt.Sprintf("invalid occurrence date %s: %s", e.Date.Format("2006-01-02"), e.Message)
}

// Entity Not Found Errors
var (
	ErrRuleNotFound       = &NotFoundError{Entity: "recurrence rule"}
	ErrOccurrenceNotFound = &NotFoundError{Entity: "occurrence"}
	ErrExceptionNotFound  = &NotFoundError{Entity: "rule exception"}
)

// State Conflict Errors
var (
	ErrAlreadyCancelled        = &StateConflictError{Message: "occurrence is already cancelled"}
	ErrAlreadyCompleted        = &StateConflictError{Message: "occurrence is already completed"}
	ErrCancelledCannotComplete = &StateConflictError{Message: "cannot complete a cancelled occurrence"}
)

// ErrInvalidTimeRange is returned directly for inverted [start, end) windows
var ErrInvalidTimeRange = &ValidationError{Message: "start datetime must be before end datetime"}

// Business Logic Errors
var (
	ErrInvalidWeekday          = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidDuration         = errors.New("duration must be positive")
	ErrEndDateBeforeStart      = errors.New("end date must be after start date")
	ErrInvalidTimeOfDay        = errors.New("time of day must be in HH:MM format")
	ErrExceptionFieldsConflict = errors.New("an exception cannot be both cancelled and have a modified datetime")
	ErrExceptionFieldsMissing  = errors.New("an exception must either be cancelled or have a modified datetime")
	ErrStandaloneDateKeyed     = errors.New("standalone occurrences are mutated by id, not by date")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStateConflict checks if an error is a StateConflictError
func IsStateConflict(err error) bool {
	var conflictErr *StateConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidOccurrenceDate checks if an error is an InvalidOccurrenceDateError
func IsInvalidOccurrenceDate(err error) bool {
	var dateErr *InvalidOccurrenceDateError
	return errors.As(err, &dateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidOccurrenceDateError creates an InvalidOccurrenceDateError for a date
func NewInvalidOccurrenceDateError(date time.Time, message string) error {
	return &InvalidOccurrenceDateError{Date: date, Message: message}
}
