package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "recurrence rule"}
		assert.Equal(t, "recurrence rule not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "occurrence"}
		err2 := &NotFoundError{Entity: "occurrence"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "occurrence"}
		err2 := &NotFoundError{Entity: "recurrence rule"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRuleNotFound, ErrRuleNotFound))
		assert.False(t, errors.Is(ErrRuleNotFound, ErrOccurrenceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrRuleNotFound))
		assert.True(t, IsNotFound(ErrExceptionNotFound))
		assert.False(t, IsNotFound(ErrAlreadyCancelled))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading rule: %w", ErrRuleNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "weekday", Message: "must be between 0 and 6"}
		assert.Equal(t, "validation error: weekday - must be between 0 and 6", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "body is not valid JSON"}
		assert.Equal(t, "validation error: body is not valid JSON", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("time_of_day", "must be HH:MM")))
		assert.False(t, IsValidation(ErrRuleNotFound))
	})

	t.Run("ErrInvalidTimeRange is a validation error", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.Contains(t, ErrInvalidTimeRange.Error(), "start datetime must be before")
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "occurrence is already cancelled", ErrAlreadyCancelled.Error())
		assert.Equal(t, "cannot complete a cancelled occurrence", ErrCancelledCannotComplete.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAlreadyCancelled, ErrAlreadyCancelled))
		assert.False(t, errors.Is(ErrAlreadyCancelled, ErrAlreadyCompleted))
	})

	t.Run("IsStateConflict helper", func(t *testing.T) {
		assert.True(t, IsStateConflict(ErrAlreadyCancelled))
		assert.True(t, IsStateConflict(ErrAlreadyCompleted))
		assert.True(t, IsStateConflict(ErrCancelledCannotComplete))
		assert.False(t, IsStateConflict(ErrOccurrenceNotFound))
	})

	t.Run("IsStateConflict through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("cancelling occurrence: %w", ErrAlreadyCancelled)
		assert.True(t, IsStateConflict(wrapped))
	})
}

func TestInvalidOccurrenceDateError(t *testing.T) {
	t.Run("Error message with date", func(t *testing.T) {
		date := time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC)
		err := NewInvalidOccurrenceDateError(date, "date does not fall on the rule's weekday")
		assert.Equal(t, "invalid occurrence date 2024-11-19: date does not fall on the rule's weekday", err.Error())
	})

	t.Run("Error message without date", func(t *testing.T) {
		err := &InvalidOccurrenceDateError{Message: "date precedes the rule's start date"}
		assert.Equal(t, "invalid occurrence date: date precedes the rule's start date", err.Error())
	})

	t.Run("IsInvalidOccurrenceDate helper", func(t *testing.T) {
		err := NewInvalidOccurrenceDateError(time.Now(), "not on weekday")
		assert.True(t, IsInvalidOccurrenceDate(err))
		assert.False(t, IsInvalidOccurrenceDate(ErrRuleNotFound))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("booking")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "booking not found", err.Error())
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("duration_minutes", "must be positive")
		assert.True(t, IsValidation(err))
	})
}
