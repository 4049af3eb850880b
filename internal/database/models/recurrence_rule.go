package models

import (
	"fmt"
	"time"
)

// RecurrenceRule is the weekly repeating template for a session.
// Weekday uses ISO-style numbering: 0=Monday .. 6=Sunday.
// TimeOfDay is stored as "HH:MM" wall-clock time; it is combined with a
// candidate date when occurrences are resolved or materialized.
type RecurrenceRule struct {
	BaseModel
	Title           string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description     string     `json:"description" gorm:"type:text"`
	Weekday         int        `json:"weekday" gorm:"not null;index" validate:"min=0,max=6"`
	TimeOfDay       string     `json:"time_of_day" gorm:"size:5;not null" validate:"required"`
	DurationMinutes int        `json:"duration_minutes" gorm:"not null;default:60" validate:"required,min=1"`
	StartDate       time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate         *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	IsActive        bool       `json:"is_active" gorm:"default:true;index"`

	// Relationships
	Exceptions  []RuleException `json:"exceptions,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
	Occurrences []Occurrence    `json:"occurrences,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for RecurrenceRule
func (RecurrenceRule) TableName() string {
	return "recurrence_rules"
}

// TimeOfDayLayout is the accepted wall-clock format for TimeOfDay.
const TimeOfDayLayout = "15:04"

// ParseTimeOfDay parses the rule's wall-clock time.
func (r *RecurrenceRule) ParseTimeOfDay() (time.Time, error) {
	t, err := time.Parse(TimeOfDayLayout, r.TimeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time_of_day %q: %w", r.TimeOfDay, err)
	}
	return t, nil
}

// CombineWithDate combines a calendar date with the rule's time of day,
// in the date's location.
func (r *RecurrenceRule) CombineWithDate(date time.Time) (time.Time, error) {
	tod, err := r.ParseTimeOfDay()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0,
		date.Location(),
	), nil
}

// ActiveOn reports whether the rule's validity window covers the given date.
// Boundaries are inclusive.
func (r *RecurrenceRule) ActiveOn(date time.Time) bool {
	d := DateOnly(date)
	if d.Before(DateOnly(r.StartDate)) {
		return false
	}
	if r.EndDate != nil && d.After(DateOnly(*r.EndDate)) {
		return false
	}
	return true
}

// ISOWeekday converts Go's Sunday-based time.Weekday to the Monday=0
// numbering used throughout the rule model.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DateOnly truncates a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
