package service

import (
	"fmt"
	"sort"
	"time"

	"session-booking-backend/internal/config"
	"session-booking-backend/internal/database/models"
	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// ResolvedOccurrence is one concrete bookable instance inside a resolution
// window. RuleID is nil for standalone sessions; OccurrenceID is set only
// when the instance is backed by a materialized row.
type ResolvedOccurrence struct {
	RuleID          *uuid.UUID `json:"rule_id,omitempty"`
	OccurrenceID    *uuid.UUID `json:"occurrence_id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	OccurrenceDate  string     `json:"occurrence_date"`
	StartDatetime   time.Time  `json:"start_datetime"`
	DurationMinutes int        `json:"duration_minutes"`
	IsModified      bool       `json:"is_modified"`
	IsRecurring     bool       `json:"is_recurring"`
}

// OccurrenceResolver expands whatever representation a deployment uses
// (rules+exceptions or materialized rows) into the concrete instances
// visible in [start, end).
type OccurrenceResolver interface {
	ResolveInRange(start, end time.Time) ([]ResolvedOccurrence, error)
}

// NewResolver selects the resolver strategy configured for this deployment.
func NewResolver(strategy string, ruleRepo repository.RuleRepositoryInterface, exceptionRepo repository.ExceptionRepositoryInterface, occRepo repository.OccurrenceRepositoryInterface) (OccurrenceResolver, error) {
	switch strategy {
	case config.ResolverStrategyVirtual:
		return NewVirtualResolver(ruleRepo, exceptionRepo, occRepo), nil
	case config.ResolverStrategyMaterialized:
		return NewMaterializedResolver(occRepo), nil
	default:
		return nil, fmt.Errorf("unknown resolver strategy %q", strategy)
	}
}

// VirtualResolver recomputes occurrences from rules and exceptions on every
// read. Standalone one-time occurrences are merged in from their rows.
type VirtualResolver struct {
	ruleRepo      repository.RuleRepositoryInterface
	exceptionRepo repository.ExceptionRepositoryInterface
	occRepo       repository.OccurrenceRepositoryInterface
}

// NewVirtualResolver creates a resolver that expands rules on read
func NewVirtualResolver(ruleRepo repository.RuleRepositoryInterface, exceptionRepo repository.ExceptionRepositoryInterface, occRepo repository.OccurrenceRepositoryInterface) *VirtualResolver {
	return &VirtualResolver{
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		occRepo:       occRepo,
	}
}

// ResolveInRange expands every active rule overlapping [start, end), applies
// the exception overlay, merges standalone instances and sorts ascending by
// effective instant. Identical instants keep their insertion order.
func (r *VirtualResolver) ResolveInRange(start, end time.Time) ([]ResolvedOccurrence, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	rules, err := r.ruleRepo.GetActiveInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	ruleIDs := make([]uuid.UUID, len(rules))
	for i := range rules {
		ruleIDs[i] = rules[i].ID
	}
	exceptions, err := r.exceptionRepo.GetByRuleIDs(ruleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load exceptions: %w", err)
	}
	overlay := indexExceptions(exceptions)

	resolved := make([]ResolvedOccurrence, 0)
	for i := range rules {
		expanded, err := expandRule(&rules[i], overlay[rules[i].ID], start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to expand rule %s: %w", rules[i].ID, err)
		}
		resolved = append(resolved, expanded...)
	}

	standalone, err := r.resolveStandalone(start, end)
	if err != nil {
		return nil, err
	}
	resolved = append(resolved, standalone...)

	sortResolved(resolved)
	return resolved, nil
}

// resolveStandalone returns one-time occurrences in the window. Cancelled
// standalones are omitted; rule-derived rows are ignored here because the
// rules themselves are the source of truth for this strategy.
func (r *VirtualResolver) resolveStandalone(start, end time.Time) ([]ResolvedOccurrence, error) {
	rows, err := r.occRepo.GetInRange(start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load standalone occurrences: %w", err)
	}

	resolved := make([]ResolvedOccurrence, 0)
	for i := range rows {
		row := rows[i]
		if !row.IsStandalone() || row.Status == models.OccurrenceStatusCancelled {
			continue
		}
		occID := row.ID
		resolved = append(resolved, ResolvedOccurrence{
			OccurrenceID:    &occID,
			Title:           row.Title,
			Description:     row.Description,
			OccurrenceDate:  row.StartDatetime.Format("2006-01-02"),
			StartDatetime:   row.StartDatetime,
			DurationMinutes: row.DurationMinutes,
			IsModified:      false,
			IsRecurring:     false,
		})
	}
	return resolved, nil
}

// expandRule walks the rule's weekday-aligned candidate dates inside the
// window and applies the exception overlay per date: cancelled dates emit
// nothing, modified dates emit the moved instant flagged is_modified.
// The half-open [start, end) check on the effective instant is the
// authoritative boundary; candidates exist only for weekday alignment.
func expandRule(rule *models.RecurrenceRule, overlay map[string]*models.RuleException, start, end time.Time) ([]ResolvedOccurrence, error) {
	first := models.DateOnly(rule.StartDate)
	if windowStart := models.DateOnly(start); windowStart.After(first) {
		first = windowStart
	}
	offset := (rule.Weekday - models.ISOWeekday(first) + 7) % 7
	first = first.AddDate(0, 0, offset)

	last := models.DateOnly(end)
	if rule.EndDate != nil && models.DateOnly(*rule.EndDate).Before(last) {
		last = models.DateOnly(*rule.EndDate)
	}
	if first.After(last) {
		return nil, nil
	}

	firstInstant, err := rule.CombineWithDate(first)
	if err != nil {
		return nil, err
	}
	untilInstant, err := rule.CombineWithDate(last)
	if err != nil {
		return nil, err
	}

	weekly, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: firstInstant,
		Until:   untilInstant,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly rule: %w", err)
	}

	ruleID := rule.ID
	resolved := make([]ResolvedOccurrence, 0)
	for _, candidate := range weekly.All() {
		date := models.DateOnly(candidate)
		effective := candidate
		modified := false

		if exception, ok := overlay[date.Format("2006-01-02")]; ok {
			if exception.IsCancelled {
				continue
			}
			if exception.ModifiedDatetime != nil {
				effective = *exception.ModifiedDatetime
				modified = true
			}
		}

		if effective.Before(start) || !effective.Before(end) {
			continue
		}

		resolved = append(resolved, ResolvedOccurrence{
			RuleID:          &ruleID,
			Title:           rule.Title,
			Description:     rule.Description,
			OccurrenceDate:  date.Format("2006-01-02"),
			StartDatetime:   effective,
			DurationMinutes: rule.DurationMinutes,
			IsModified:      modified,
			IsRecurring:     true,
		})
	}
	return resolved, nil
}

// indexExceptions groups exceptions by rule, keyed by calendar date.
func indexExceptions(exceptions []models.RuleException) map[uuid.UUID]map[string]*models.RuleException {
	overlay := make(map[uuid.UUID]map[string]*models.RuleException)
	for i := range exceptions {
		exception := &exceptions[i]
		byDate, ok := overlay[exception.RuleID]
		if !ok {
			byDate = make(map[string]*models.RuleException)
			overlay[exception.RuleID] = byDate
		}
		byDate[models.DateOnly(exception.ExceptionDate).Format("2006-01-02")] = exception
	}
	return overlay
}

func sortResolved(resolved []ResolvedOccurrence) {
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].StartDatetime.Before(resolved[j].StartDatetime)
	})
}

// MaterializedResolver reads pre-generated occurrence rows. It trades
// storage for O(1) per-instance addressing and mutation.
type MaterializedResolver struct {
	occRepo repository.OccurrenceRepositoryInterface
}

// NewMaterializedResolver creates a resolver backed by occurrence rows
func NewMaterializedResolver(occRepo repository.OccurrenceRepositoryInterface) *MaterializedResolver {
	return &MaterializedResolver{occRepo: occRepo}
}

// ResolveInRange returns the non-cancelled materialized occurrences in
// [start, end), ordered ascending by start instant.
func (r *MaterializedResolver) ResolveInRange(start, end time.Time) ([]ResolvedOccurrence, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	rows, err := r.occRepo.GetInRange(start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load occurrences: %w", err)
	}

	resolved := make([]ResolvedOccurrence, 0, len(rows))
	for i := range rows {
		row := rows[i]
		if row.Status == models.OccurrenceStatusCancelled {
			continue
		}
		occID := row.ID
		resolved = append(resolved, ResolvedOccurrence{
			RuleID:          row.RuleID,
			OccurrenceID:    &occID,
			Title:           row.Title,
			Description:     row.Description,
			OccurrenceDate:  row.StartDatetime.Format("2006-01-02"),
			StartDatetime:   row.StartDatetime,
			DurationMinutes: row.DurationMinutes,
			IsModified:      row.IsException,
			IsRecurring:     !row.IsStandalone(),
		})
	}

	sortResolved(resolved)
	return resolved, nil
}
