package models

import (
	"time"

	"github.com/google/uuid"
)

// RuleException is a per-date override for one instance of a recurrence
// rule: either the instance is cancelled, or it is moved to
// ModifiedDatetime. Exactly one of the two holds; the unique index on
// (rule_id, exception_date) guarantees at most one override per instance.
type RuleException struct {
	BaseModel
	RuleID           uuid.UUID  `json:"rule_id" gorm:"type:uuid;not null;uniqueIndex:idx_rule_exception_date" validate:"required"`
	ExceptionDate    time.Time  `json:"exception_date" gorm:"type:date;not null;uniqueIndex:idx_rule_exception_date" validate:"required"`
	IsCancelled      bool       `json:"is_cancelled" gorm:"default:false"`
	ModifiedDatetime *time.Time `json:"modified_datetime,omitempty"`

	// Relationships
	Rule RecurrenceRule `json:"rule,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RuleException
func (RuleException) TableName() string {
	return "rule_exceptions"
}
