package service

import (
	"errors"
	"fmt"
	"time"

	"session-booking-backend/internal/database/models"
	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccurrenceService handles business logic for individual session
// occurrences: standalone creation, partial updates and the
// scheduled → {cancelled | completed} state machine.
type OccurrenceService struct {
	occRepo   repository.OccurrenceRepositoryInterface
	validator *validator.Validate
}

// NewOccurrenceService creates a new occurrence service
func NewOccurrenceService(occRepo repository.OccurrenceRepositoryInterface, validator *validator.Validate) *OccurrenceService {
	return &OccurrenceService{
		occRepo:   occRepo,
		validator: validator,
	}
}

// CreateOccurrenceRequest represents the request to create a standalone occurrence
type CreateOccurrenceRequest struct {
	Title           string    `json:"title" validate:"required,min=1,max=200"`
	Description     string    `json:"description,omitempty"`
	StartDatetime   time.Time `json:"start_datetime" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
}

// UpdateOccurrenceRequest represents the request to update an occurrence.
// Only non-nil fields are applied.
type UpdateOccurrenceRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	StartDatetime   *time.Time `json:"start_datetime,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// OccurrenceResponse represents the response for occurrence operations
type OccurrenceResponse struct {
	ID              uuid.UUID               `json:"id"`
	RuleID          *uuid.UUID              `json:"rule_id,omitempty"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	StartDatetime   time.Time               `json:"start_datetime"`
	DurationMinutes int                     `json:"duration_minutes"`
	Status          models.OccurrenceStatus `json:"status"`
	IsException     bool                    `json:"is_exception"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// OccurrenceListResponse represents a list of occurrences in a range
type OccurrenceListResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Total       int                  `json:"total"`
}

// CreateStandalone creates a one-time occurrence with no owning rule.
func (s *OccurrenceService) CreateStandalone(req *CreateOccurrenceRequest) (*OccurrenceResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	duration := 60
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration <= 0 {
		return nil, apperrors.NewValidationError("duration_minutes", apperrors.ErrInvalidDuration.Error())
	}

	occurrence := &models.Occurrence{
		RuleID:          nil,
		Title:           req.Title,
		Description:     req.Description,
		StartDatetime:   req.StartDatetime,
		DurationMinutes: duration,
		Status:          models.OccurrenceStatusScheduled,
		IsException:     false,
	}

	if err := s.occRepo.Create(occurrence); err != nil {
		return nil, fmt.Errorf("failed to create occurrence: %w", err)
	}

	return s.toResponse(occurrence), nil
}

// GetByID retrieves an occurrence by ID
func (s *OccurrenceService) GetByID(id uuid.UUID) (*OccurrenceResponse, error) {
	occurrence, err := s.getOccurrence(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(occurrence), nil
}

// Update applies the provided fields to an occurrence. Moving a
// rule-derived occurrence marks it as an exception so later template
// propagation leaves it alone.
func (s *OccurrenceService) Update(id uuid.UUID, req *UpdateOccurrenceRequest) (*OccurrenceResponse, error) {
	occurrence, err := s.getOccurrence(id)
	if err != nil {
		return nil, err
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return nil, apperrors.NewValidationError("duration_minutes", apperrors.ErrInvalidDuration.Error())
	}

	if req.StartDatetime != nil {
		occurrence.StartDatetime = *req.StartDatetime
		if !occurrence.IsStandalone() {
			occurrence.IsException = true
		}
	}
	if req.Title != nil {
		occurrence.Title = *req.Title
	}
	if req.Description != nil {
		occurrence.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		occurrence.DurationMinutes = *req.DurationMinutes
	}

	if err := s.occRepo.Update(occurrence); err != nil {
		return nil, fmt.Errorf("failed to update occurrence: %w", err)
	}

	return s.toResponse(occurrence), nil
}

// Cancel sets the occurrence status to cancelled. Cancelled is terminal.
func (s *OccurrenceService) Cancel(id uuid.UUID) (*OccurrenceResponse, error) {
	occurrence, err := s.getOccurrence(id)
	if err != nil {
		return nil, err
	}

	if occurrence.Status == models.OccurrenceStatusCancelled {
		return nil, apperrors.ErrAlreadyCancelled
	}

	occurrence.Status = models.OccurrenceStatusCancelled
	if !occurrence.IsStandalone() {
		occurrence.IsException = true
	}

	if err := s.occRepo.Update(occurrence); err != nil {
		return nil, fmt.Errorf("failed to cancel occurrence: %w", err)
	}

	return s.toResponse(occurrence), nil
}

// Complete marks the occurrence as completed. Completed is terminal and a
// cancelled occurrence can never be completed.
func (s *OccurrenceService) Complete(id uuid.UUID) (*OccurrenceResponse, error) {
	occurrence, err := s.getOccurrence(id)
	if err != nil {
		return nil, err
	}

	if occurrence.Status == models.OccurrenceStatusCompleted {
		return nil, apperrors.ErrAlreadyCompleted
	}
	if occurrence.Status == models.OccurrenceStatusCancelled {
		return nil, apperrors.ErrCancelledCannotComplete
	}

	occurrence.Status = models.OccurrenceStatusCompleted

	if err := s.occRepo.Update(occurrence); err != nil {
		return nil, fmt.Errorf("failed to complete occurrence: %w", err)
	}

	return s.toResponse(occurrence), nil
}

// ListInRange returns occurrences whose start instant falls in
// [start, end), optionally filtered by status, ordered ascending.
func (s *OccurrenceService) ListInRange(start, end time.Time, status string) (*OccurrenceListResponse, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	var statusFilter *models.OccurrenceStatus
	if status != "" {
		occStatus := models.OccurrenceStatus(status)
		if !occStatus.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("invalid status %q", status))
		}
		statusFilter = &occStatus
	}

	occurrences, err := s.occRepo.GetInRange(start, end, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}

	responses := make([]OccurrenceResponse, len(occurrences))
	for i := range occurrences {
		responses[i] = *s.toResponse(&occurrences[i])
	}

	return &OccurrenceListResponse{
		Occurrences: responses,
		Total:       len(responses),
	}, nil
}

func (s *OccurrenceService) getOccurrence(id uuid.UUID) (*models.Occurrence, error) {
	occurrence, err := s.occRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOccurrenceNotFound
		}
		return nil, fmt.Errorf("failed to get occurrence: %w", err)
	}
	return occurrence, nil
}

// toResponse converts an occurrence model to response
func (s *OccurrenceService) toResponse(occurrence *models.Occurrence) *OccurrenceResponse {
	return &OccurrenceResponse{
		ID:              occurrence.ID,
		RuleID:          occurrence.RuleID,
		Title:           occurrence.Title,
		Description:     occurrence.Description,
		StartDatetime:   occurrence.StartDatetime,
		DurationMinutes: occurrence.DurationMinutes,
		Status:          occurrence.Status,
		IsException:     occurrence.IsException,
		CreatedAt:       occurrence.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       occurrence.UpdatedAt.Format(time.RFC3339),
	}
}
