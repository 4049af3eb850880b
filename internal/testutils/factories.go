package testutils

import (
	"time"

	"session-booking-backend/internal/database/models"

	"github.com/google/uuid"
)

// RuleFactory provides methods to create test RecurrenceRule data
type RuleFactory struct{}

// NewRuleFactory creates a new RuleFactory
func NewRuleFactory() *RuleFactory {
	return &RuleFactory{}
}

// Create creates a test RecurrenceRule with default values: a Monday
// 10:00 session starting 2024-11-04 with no end date.
func (f *RuleFactory) Create() *models.RecurrenceRule {
	return &models.RecurrenceRule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Weekly Session",
		Description:     "A recurring test session",
		Weekday:         0,
		TimeOfDay:       "10:00",
		DurationMinutes: 60,
		StartDate:       time.Date(2024, 11, 4, 0, 0, 0, 0, time.UTC),
		EndDate:         nil,
		IsActive:        true,
	}
}

// WithWeekday sets a custom weekday (0=Monday .. 6=Sunday)
func (f *RuleFactory) WithWeekday(weekday int) *models.RecurrenceRule {
	rule := f.Create()
	rule.Weekday = weekday
	return rule
}

// WithTimeOfDay sets a custom start time in HH:MM form
func (f *RuleFactory) WithTimeOfDay(timeOfDay string) *models.RecurrenceRule {
	rule := f.Create()
	rule.TimeOfDay = timeOfDay
	return rule
}

// WithEndDate bounds the rule at the given date (inclusive)
func (f *RuleFactory) WithEndDate(endDate time.Time) *models.RecurrenceRule {
	rule := f.Create()
	rule.EndDate = &endDate
	return rule
}

// Inactive creates a deactivated rule
func (f *RuleFactory) Inactive() *models.RecurrenceRule {
	rule := f.Create()
	rule.IsActive = false
	return rule
}

// ExceptionFactory provides methods to create test RuleException data
type ExceptionFactory struct{}

// NewExceptionFactory creates a new ExceptionFactory
func NewExceptionFactory() *ExceptionFactory {
	return &ExceptionFactory{}
}

// Cancellation creates a cancellation exception for the given rule and date
func (f *ExceptionFactory) Cancellation(ruleID uuid.UUID, date time.Time) *models.RuleException {
	return &models.RuleException{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RuleID:        ruleID,
		ExceptionDate: date,
		IsCancelled:   true,
	}
}

// Reschedule creates a modification exception moving the given date's
// instance to newDatetime.
func (f *ExceptionFactory) Reschedule(ruleID uuid.UUID, date, newDatetime time.Time) *models.RuleException {
	return &models.RuleException{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RuleID:           ruleID,
		ExceptionDate:    date,
		IsCancelled:      false,
		ModifiedDatetime: &newDatetime,
	}
}

// OccurrenceFactory provides methods to create test Occurrence data
type OccurrenceFactory struct{}

// NewOccurrenceFactory creates a new OccurrenceFactory
func NewOccurrenceFactory() *OccurrenceFactory {
	return &OccurrenceFactory{}
}

// Standalone creates a one-time occurrence with no owning rule
func (f *OccurrenceFactory) Standalone(startDatetime time.Time) *models.Occurrence {
	return &models.Occurrence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RuleID:          nil,
		Title:           "One-time Session",
		Description:     "A standalone test session",
		StartDatetime:   startDatetime,
		DurationMinutes: 60,
		Status:          models.OccurrenceStatusScheduled,
		IsException:     false,
	}
}

// ForRule creates a materialized occurrence owned by the given rule
func (f *OccurrenceFactory) ForRule(rule *models.RecurrenceRule, startDatetime time.Time) *models.Occurrence {
	ruleID := rule.ID
	return &models.Occurrence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RuleID:          &ruleID,
		Title:           rule.Title,
		Description:     rule.Description,
		StartDatetime:   startDatetime,
		DurationMinutes: rule.DurationMinutes,
		Status:          models.OccurrenceStatusScheduled,
		IsException:     false,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Rule       *RuleFactory
	Exception  *ExceptionFactory
	Occurrence *OccurrenceFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Rule:       NewRuleFactory(),
		Exception:  NewExceptionFactory(),
		Occurrence: NewOccurrenceFactory(),
	}
}
