package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RuleServiceInterface defines the interface for recurrence rule operations
type RuleServiceInterface interface {
	Create(req *CreateRuleRequest) (*RuleWithGenerationResponse, error)
	GetByID(id uuid.UUID) (*RuleResponse, error)
	GetAll(page, pageSize int) (*RuleListResponse, error)
	Update(id uuid.UUID, req *UpdateRuleRequest, propagate bool) (*RuleResponse, error)
	Deactivate(id uuid.UUID) (*RuleResponse, error)
	Delete(id uuid.UUID, cascade bool) error
	CancelOccurrenceDate(ruleID uuid.UUID, date time.Time) error
	RescheduleOccurrenceDate(ruleID uuid.UUID, date time.Time, newDatetime time.Time) error
}

// OccurrenceServiceInterface defines the interface for occurrence operations
type OccurrenceServiceInterface interface {
	CreateStandalone(req *CreateOccurrenceRequest) (*OccurrenceResponse, error)
	GetByID(id uuid.UUID) (*OccurrenceResponse, error)
	Update(id uuid.UUID, req *UpdateOccurrenceRequest) (*OccurrenceResponse, error)
	Cancel(id uuid.UUID) (*OccurrenceResponse, error)
	Complete(id uuid.UUID) (*OccurrenceResponse, error)
	ListInRange(start, end time.Time, status string) (*OccurrenceListResponse, error)
}

// GenerationServiceInterface defines the interface for occurrence generation
type GenerationServiceInterface interface {
	GenerateAll(horizon Horizon) (int, error)
}

// ResolverInterface is the handler-facing alias for OccurrenceResolver
type ResolverInterface interface {
	ResolveInRange(start, end time.Time) ([]ResolvedOccurrence, error)
}
