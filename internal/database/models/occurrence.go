package models

import (
	"time"

	"github.com/google/uuid"
)

// Occurrence is a concrete, independently addressable bookable instance.
// RuleID is nil for one-time standalone sessions. IsException marks a
// rule-derived row that has been edited or cancelled away from its
// template values; a standalone occurrence is never an exception.
// The unique index on (rule_id, start_datetime) makes regeneration
// idempotent (Postgres treats NULL rule_ids as distinct, so standalone
// rows are unconstrained by it).
type Occurrence struct {
	BaseModel
	RuleID          *uuid.UUID       `json:"rule_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_rule_start;index"`
	Title           string           `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description     string           `json:"description" gorm:"type:text"`
	StartDatetime   time.Time        `json:"start_datetime" gorm:"not null;uniqueIndex:idx_rule_start;index" validate:"required"`
	DurationMinutes int              `json:"duration_minutes" gorm:"not null;default:60" validate:"required,min=1"`
	Status          OccurrenceStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	IsException     bool             `json:"is_exception" gorm:"default:false"`

	// Relationships. Deleting a rule detaches its remaining occurrences
	// instead of cascading, so past session history survives.
	Rule *RecurrenceRule `json:"rule,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Occurrence
func (Occurrence) TableName() string {
	return "occurrences"
}

// IsStandalone reports whether the occurrence is a one-time session that
// does not belong to any recurrence rule.
func (o *Occurrence) IsStandalone() bool {
	return o.RuleID == nil
}

// EndDatetime returns the instant at which the occurrence ends.
func (o *Occurrence) EndDatetime() time.Time {
	return o.StartDatetime.Add(time.Duration(o.DurationMinutes) * time.Minute)
}
