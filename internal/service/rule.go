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

// RuleService handles business logic for recurrence rules, including the
// date-keyed single-occurrence operations that promote implicit instances
// into explicit exceptions.
type RuleService struct {
	ruleRepo      repository.RuleRepositoryInterface
	exceptionRepo repository.ExceptionRepositoryInterface
	occRepo       repository.OccurrenceRepositoryInterface
	validator     *validator.Validate
	now           func() time.Time
}

// NewRuleService creates a new recurrence rule service
func NewRuleService(ruleRepo repository.RuleRepositoryInterface, exceptionRepo repository.ExceptionRepositoryInterface, occRepo repository.OccurrenceRepositoryInterface, validator *validator.Validate) *RuleService {
	return &RuleService{
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		occRepo:       occRepo,
		validator:     validator,
		now:           time.Now,
	}
}

// CreateRuleRequest represents the request to create a recurrence rule
type CreateRuleRequest struct {
	Title               string     `json:"title" validate:"required,min=1,max=200"`
	Description         string     `json:"description,omitempty"`
	Weekday             int        `json:"weekday" validate:"min=0,max=6"`
	TimeOfDay           string     `json:"time_of_day" validate:"required"`
	DurationMinutes     *int       `json:"duration_minutes,omitempty"`
	StartDate           time.Time  `json:"start_date" validate:"required"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	GenerateOccurrences bool       `json:"generate_occurrences"`
	MonthsAhead         int        `json:"months_ahead,omitempty"`
}

// UpdateRuleRequest represents the request to update a recurrence rule.
// Only non-nil fields are applied.
type UpdateRuleRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	TimeOfDay       *string    `json:"time_of_day,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

// RuleResponse represents the response for recurrence rule operations
type RuleResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Weekday         int       `json:"weekday"`
	TimeOfDay       string    `json:"time_of_day"`
	DurationMinutes int       `json:"duration_minutes"`
	StartDate       string    `json:"start_date"`
	EndDate         *string   `json:"end_date,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// RuleWithGenerationResponse is returned by Create: the rule plus how many
// occurrences were materialized alongside it.
type RuleWithGenerationResponse struct {
	Rule               RuleResponse `json:"rule"`
	OccurrencesCreated int          `json:"occurrences_created"`
}

// RuleListResponse represents a paginated list of recurrence rules
type RuleListResponse struct {
	Rules    []RuleResponse `json:"rules"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new recurrence rule and, when requested, its initial
// occurrences in the same transaction.
func (s *RuleService) Create(req *CreateRuleRequest) (*RuleWithGenerationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, apperrors.NewValidationError("weekday", apperrors.ErrInvalidWeekday.Error())
	}

	duration := 60
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration <= 0 {
		return nil, apperrors.NewValidationError("duration_minutes", apperrors.ErrInvalidDuration.Error())
	}

	if _, err := time.Parse(models.TimeOfDayLayout, req.TimeOfDay); err != nil {
		return nil, apperrors.NewValidationError("time_of_day", apperrors.ErrInvalidTimeOfDay.Error())
	}

	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", apperrors.ErrEndDateBeforeStart.Error())
	}

	rule := &models.RecurrenceRule{
		Title:           req.Title,
		Description:     req.Description,
		Weekday:         req.Weekday,
		TimeOfDay:       req.TimeOfDay,
		DurationMinutes: duration,
		StartDate:       models.DateOnly(req.StartDate),
		IsActive:        true,
	}
	if req.EndDate != nil {
		endDate := models.DateOnly(*req.EndDate)
		rule.EndDate = &endDate
	}

	var occurrences []models.Occurrence
	if req.GenerateOccurrences {
		horizon := Horizon{MonthsAhead: req.MonthsAhead}
		if horizon.MonthsAhead <= 0 {
			horizon.MonthsAhead = 3
		}
		cutoff := models.DateOnly(s.now()).AddDate(0, 0, horizon.Days())
		if rule.EndDate != nil && rule.EndDate.Before(cutoff) {
			cutoff = *rule.EndDate
		}
		var err error
		occurrences, err = buildRuleOccurrences(rule, cutoff)
		if err != nil {
			return nil, fmt.Errorf("failed to build occurrences: %w", err)
		}
	}

	if err := s.ruleRepo.CreateWithOccurrences(rule, occurrences); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	return &RuleWithGenerationResponse{
		Rule:               *s.toResponse(rule),
		OccurrencesCreated: len(occurrences),
	}, nil
}

// GetByID retrieves a recurrence rule by ID
func (s *RuleService) GetByID(id uuid.UUID) (*RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	return s.toResponse(rule), nil
}

// GetAll retrieves recurrence rules with pagination
func (s *RuleService) GetAll(page, pageSize int) (*RuleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	rules, total, err := s.ruleRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}

	responses := make([]RuleResponse, len(rules))
	for i := range rules {
		responses[i] = *s.toResponse(&rules[i])
	}

	return &RuleListResponse{
		Rules:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies the provided fields to the rule. With propagate, template
// edits fan out to the rule's future, scheduled, non-exception occurrences;
// manually edited instances keep their overrides.
func (s *RuleService) Update(id uuid.UUID, req *UpdateRuleRequest, propagate bool) (*RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return nil, apperrors.NewValidationError("duration_minutes", apperrors.ErrInvalidDuration.Error())
	}
	if req.TimeOfDay != nil {
		if _, err := time.Parse(models.TimeOfDayLayout, *req.TimeOfDay); err != nil {
			return nil, apperrors.NewValidationError("time_of_day", apperrors.ErrInvalidTimeOfDay.Error())
		}
	}
	if req.EndDate != nil && !req.EndDate.After(rule.StartDate) {
		return nil, apperrors.NewValidationError("end_date", apperrors.ErrEndDateBeforeStart.Error())
	}

	// Apply provided fields
	if req.Title != nil {
		rule.Title = *req.Title
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.TimeOfDay != nil {
		rule.TimeOfDay = *req.TimeOfDay
	}
	if req.DurationMinutes != nil {
		rule.DurationMinutes = *req.DurationMinutes
	}
	if req.EndDate != nil {
		endDate := models.DateOnly(*req.EndDate)
		rule.EndDate = &endDate
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}

	if propagate {
		if err := s.propagateToFutureOccurrences(rule, req); err != nil {
			return nil, err
		}
	}

	return s.toResponse(rule), nil
}

// propagateToFutureOccurrences rewrites future non-exception scheduled
// occurrences to match the updated template.
func (s *RuleService) propagateToFutureOccurrences(rule *models.RecurrenceRule, req *UpdateRuleRequest) error {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}

	now := s.now()
	if _, err := s.occRepo.UpdateFutureFromTemplate(rule.ID, now, updates); err != nil {
		return fmt.Errorf("failed to propagate rule update: %w", err)
	}

	if req.TimeOfDay != nil {
		if _, err := s.occRepo.ShiftFutureTimeOfDay(rule.ID, now, *req.TimeOfDay); err != nil {
			return fmt.Errorf("failed to shift future occurrences: %w", err)
		}
	}

	return nil
}

// Deactivate stops future generation for the rule but preserves history.
func (s *RuleService) Deactivate(id uuid.UUID) (*RuleResponse, error) {
	inactive := false
	return s.Update(id, &UpdateRuleRequest{IsActive: &inactive}, false)
}

// Delete removes a rule. With cascade, its future occurrences are deleted
// in the same transaction; without, the rule is only deactivated.
func (s *RuleService) Delete(id uuid.UUID, cascade bool) error {
	_, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRuleNotFound
		}
		return fmt.Errorf("failed to get rule: %w", err)
	}

	if !cascade {
		_, err := s.Deactivate(id)
		return err
	}

	if err := s.ruleRepo.DeleteWithFutureOccurrences(id, s.now()); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	return nil
}

// CancelOccurrenceDate cancels one instance of a rule, addressed by its
// calendar date. The instance is promoted to an explicit exception; an
// existing exception for the date is replaced.
func (s *RuleService) CancelOccurrenceDate(ruleID uuid.UUID, date time.Time) error {
	rule, err := s.guardOccurrenceDate(ruleID, date)
	if err != nil {
		return err
	}

	if err := s.upsertException(rule, date, true, nil); err != nil {
		return fmt.Errorf("failed to cancel occurrence: %w", err)
	}
	return nil
}

// RescheduleOccurrenceDate moves one instance of a rule to a new instant,
// addressed by its calendar date.
func (s *RuleService) RescheduleOccurrenceDate(ruleID uuid.UUID, date time.Time, newDatetime time.Time) error {
	rule, err := s.guardOccurrenceDate(ruleID, date)
	if err != nil {
		return err
	}

	if err := s.upsertException(rule, date, false, &newDatetime); err != nil {
		return fmt.Errorf("failed to reschedule occurrence: %w", err)
	}
	return nil
}

// upsertException writes the override for one instance date. Exactly one of
// cancelled / modified must be supplied; the unique (rule_id, exception_date)
// key makes the write replace any earlier override for the same date.
func (s *RuleService) upsertException(rule *models.RecurrenceRule, date time.Time, cancelled bool, modified *time.Time) error {
	if cancelled && modified != nil {
		return apperrors.NewValidationError("exception", apperrors.ErrExceptionFieldsConflict.Error())
	}
	if !cancelled && modified == nil {
		return apperrors.NewValidationError("exception", apperrors.ErrExceptionFieldsMissing.Error())
	}

	return s.exceptionRepo.Upsert(&models.RuleException{
		RuleID:           rule.ID,
		ExceptionDate:    models.DateOnly(date),
		IsCancelled:      cancelled,
		ModifiedDatetime: modified,
	})
}

// guardOccurrenceDate validates that a date-keyed operation targets a real
// instance of the rule: the date must fall on the rule's weekday and must
// be on or after its start date.
func (s *RuleService) guardOccurrenceDate(ruleID uuid.UUID, date time.Time) (*models.RecurrenceRule, error) {
	rule, err := s.ruleRepo.GetByID(ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if models.ISOWeekday(date) != rule.Weekday {
		return nil, apperrors.NewInvalidOccurrenceDateError(date, "date does not fall on the rule's weekday")
	}
	if models.DateOnly(date).Before(models.DateOnly(rule.StartDate)) {
		return nil, apperrors.NewInvalidOccurrenceDateError(date, "date precedes the rule's start date")
	}

	return rule, nil
}

// toResponse converts a recurrence rule model to response
func (s *RuleService) toResponse(rule *models.RecurrenceRule) *RuleResponse {
	response := &RuleResponse{
		ID:              rule.ID,
		Title:           rule.Title,
		Description:     rule.Description,
		Weekday:         rule.Weekday,
		TimeOfDay:       rule.TimeOfDay,
		DurationMinutes: rule.DurationMinutes,
		StartDate:       rule.StartDate.Format("2006-01-02"),
		IsActive:        rule.IsActive,
		CreatedAt:       rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       rule.UpdatedAt.Format(time.RFC3339),
	}

	if rule.EndDate != nil {
		endDate := rule.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}

	return response
}
