package repository

import (
	"time"

	"session-booking-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RuleRepositoryInterface defines the interface for recurrence rule repository operations
type RuleRepositoryInterface interface {
	Create(rule *models.RecurrenceRule) error
	CreateWithOccurrences(rule *models.RecurrenceRule, occurrences []models.Occurrence) error
	GetByID(id uuid.UUID) (*models.RecurrenceRule, error)
	GetAll(limit, offset int) ([]models.RecurrenceRule, int64, error)
	GetActive() ([]models.RecurrenceRule, error)
	GetActiveInWindow(start, end time.Time) ([]models.RecurrenceRule, error)
	Update(rule *models.RecurrenceRule) error
	Delete(id uuid.UUID) error
	DeleteWithFutureOccurrences(id uuid.UUID, from time.Time) error
}

// ExceptionRepositoryInterface defines the interface for rule exception repository operations
type ExceptionRepositoryInterface interface {
	Upsert(exception *models.RuleException) error
	GetByRuleAndDate(ruleID uuid.UUID, date time.Time) (*models.RuleException, error)
	GetByRuleID(ruleID uuid.UUID) ([]models.RuleException, error)
	GetByRuleIDs(ruleIDs []uuid.UUID) ([]models.RuleException, error)
	Delete(id uuid.UUID) error
}

// OccurrenceRepositoryInterface defines the interface for occurrence repository operations
type OccurrenceRepositoryInterface interface {
	Create(occurrence *models.Occurrence) error
	CreateBatch(occurrences []models.Occurrence) error
	GetByID(id uuid.UUID) (*models.Occurrence, error)
	GetInRange(start, end time.Time, status *models.OccurrenceStatus) ([]models.Occurrence, error)
	ExistsForRuleAt(ruleID uuid.UUID, startDatetime time.Time) (bool, error)
	Update(occurrence *models.Occurrence) error
	UpdateFutureFromTemplate(ruleID uuid.UUID, from time.Time, updates map[string]interface{}) (int64, error)
	ShiftFutureTimeOfDay(ruleID uuid.UUID, from time.Time, timeOfDay string) (int64, error)
	GetUpcoming(limit, offset int) ([]models.Occurrence, int64, error)
	Delete(id uuid.UUID) error
}
