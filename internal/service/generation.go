package service

import (
	"fmt"
	"time"

	"session-booking-backend/internal/database/models"
	"session-booking-backend/internal/logger"
	"session-booking-backend/internal/repository"
)

const (
	// DaysPerMonth is the approximation used when a horizon is given in months.
	DaysPerMonth = 30

	// DefaultDaysAhead is the generation horizon used when none is supplied.
	DefaultDaysAhead = 7
)

// Horizon expresses how far ahead occurrences are materialized. DaysAhead
// wins when both are set; MonthsAhead uses the 30-day month approximation.
type Horizon struct {
	DaysAhead   int
	MonthsAhead int
}

// Days returns the horizon length in days.
func (h Horizon) Days() int {
	if h.DaysAhead > 0 {
		return h.DaysAhead
	}
	if h.MonthsAhead > 0 {
		return h.MonthsAhead * DaysPerMonth
	}
	return DefaultDaysAhead
}

// GenerationService materializes occurrence rows from recurrence rules.
// Generation is idempotent: every candidate instant is existence-checked
// before insert, so re-running with the same horizon creates nothing new.
type GenerationService struct {
	ruleRepo repository.RuleRepositoryInterface
	occRepo  repository.OccurrenceRepositoryInterface
	now      func() time.Time
}

// NewGenerationService creates a new generation service
func NewGenerationService(ruleRepo repository.RuleRepositoryInterface, occRepo repository.OccurrenceRepositoryInterface) *GenerationService {
	return &GenerationService{
		ruleRepo: ruleRepo,
		occRepo:  occRepo,
		now:      time.Now,
	}
}

// GenerateForRule creates occurrences for one rule up to the horizon and
// returns how many were created. Inactive rules generate nothing. When the
// rule's own end_date is earlier than the horizon cutoff, the rule wins.
func (s *GenerationService) GenerateForRule(rule *models.RecurrenceRule, horizon Horizon) (int, error) {
	if !rule.IsActive {
		return 0, nil
	}

	candidates, err := buildRuleOccurrences(rule, s.generationCutoff(rule, horizon))
	if err != nil {
		return 0, err
	}

	toCreate := make([]models.Occurrence, 0, len(candidates))
	for _, candidate := range candidates {
		exists, err := s.occRepo.ExistsForRuleAt(*candidate.RuleID, candidate.StartDatetime)
		if err != nil {
			return 0, fmt.Errorf("failed to check existing occurrence: %w", err)
		}
		if !exists {
			toCreate = append(toCreate, candidate)
		}
	}

	if err := s.occRepo.CreateBatch(toCreate); err != nil {
		return 0, fmt.Errorf("failed to create occurrences: %w", err)
	}

	return len(toCreate), nil
}

// GenerateAll creates occurrences for every active rule and returns the
// total number created.
func (s *GenerationService) GenerateAll(horizon Horizon) (int, error) {
	rules, err := s.ruleRepo.GetActive()
	if err != nil {
		return 0, fmt.Errorf("failed to load active rules: %w", err)
	}

	total := 0
	for i := range rules {
		created, err := s.GenerateForRule(&rules[i], horizon)
		if err != nil {
			return total, fmt.Errorf("failed to generate for rule %s: %w", rules[i].ID, err)
		}
		total += created
	}

	logger.New().WithFields(map[string]interface{}{
		"rules":   len(rules),
		"created": total,
		"days":    horizon.Days(),
	}).Info("occurrence generation finished")

	return total, nil
}

// generationCutoff returns the last date (inclusive) to generate for:
// today + horizon, clamped to the rule's end_date when that is earlier.
func (s *GenerationService) generationCutoff(rule *models.RecurrenceRule, horizon Horizon) time.Time {
	cutoff := models.DateOnly(s.now()).AddDate(0, 0, horizon.Days())
	if rule.EndDate != nil && models.DateOnly(*rule.EndDate).Before(cutoff) {
		cutoff = models.DateOnly(*rule.EndDate)
	}
	return cutoff
}

// buildRuleOccurrences returns one unsaved occurrence row per weekday-aligned
// date between the rule's start date and the cutoff (inclusive).
func buildRuleOccurrences(rule *models.RecurrenceRule, cutoff time.Time) ([]models.Occurrence, error) {
	first := models.DateOnly(rule.StartDate)
	offset := (rule.Weekday - models.ISOWeekday(first) + 7) % 7
	first = first.AddDate(0, 0, offset)

	var occurrences []models.Occurrence
	ruleID := rule.ID
	for date := first; !date.After(cutoff); date = date.AddDate(0, 0, 7) {
		startDatetime, err := rule.CombineWithDate(date)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, models.Occurrence{
			RuleID:          &ruleID,
			Title:           rule.Title,
			Description:     rule.Description,
			StartDatetime:   startDatetime,
			DurationMinutes: rule.DurationMinutes,
			Status:          models.OccurrenceStatusScheduled,
			IsException:     false,
		})
	}
	return occurrences, nil
}
