package repository

import (
	"time"

	"session-booking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleRepository handles database operations for recurrence rules
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new recurrence rule repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create creates a new recurrence rule
func (r *RuleRepository) Create(rule *models.RecurrenceRule) error {
	return r.db.Create(rule).Error
}

// CreateWithOccurrences creates a rule and its initial occurrences in one
// transaction, so a rule never commits without its generated instances.
func (r *RuleRepository) CreateWithOccurrences(rule *models.RecurrenceRule, occurrences []models.Occurrence) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rule).Error; err != nil {
			return err
		}
		for i := range occurrences {
			occurrences[i].RuleID = &rule.ID
		}
		if len(occurrences) > 0 {
			if err := tx.Create(&occurrences).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a recurrence rule by ID
func (r *RuleRepository) GetByID(id uuid.UUID) (*models.RecurrenceRule, error) {
	var rule models.RecurrenceRule
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll retrieves all recurrence rules with pagination
func (r *RuleRepository) GetAll(limit, offset int) ([]models.RecurrenceRule, int64, error) {
	var rules []models.RecurrenceRule
	var total int64

	if err := r.db.Model(&models.RecurrenceRule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("start_date ASC").Limit(limit).Offset(offset).Find(&rules).Error
	return rules, total, err
}

// GetActive retrieves all active recurrence rules
func (r *RuleRepository) GetActive() ([]models.RecurrenceRule, error) {
	var rules []models.RecurrenceRule
	err := r.db.Where("is_active = ?", true).Order("start_date ASC").Find(&rules).Error
	return rules, err
}

// GetActiveInWindow retrieves active rules whose validity window overlaps
// [start, end): start_date on or before the window end, and end_date unset
// or on/after the window start.
func (r *RuleRepository) GetActiveInWindow(start, end time.Time) ([]models.RecurrenceRule, error) {
	var rules []models.RecurrenceRule
	err := r.db.
		Where("is_active = ?", true).
		Where("start_date <= ?", end.Format("2006-01-02")).
		Where("end_date IS NULL OR end_date >= ?", start.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rules).Error
	return rules, err
}

// Update updates a recurrence rule
func (r *RuleRepository) Update(rule *models.RecurrenceRule) error {
	return r.db.Save(rule).Error
}

// Delete deletes a recurrence rule. Exceptions are removed by the cascade
// on their foreign key; remaining occurrences are detached, not deleted.
func (r *RuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RecurrenceRule{}, "id = ?", id).Error
}

// DeleteWithFutureOccurrences deletes a rule together with its occurrences
// starting at or after the given instant, in one transaction.
func (r *RuleRepository) DeleteWithFutureOccurrences(id uuid.UUID, from time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rule_id = ? AND start_datetime >= ?", id, from).
			Delete(&models.Occurrence{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RecurrenceRule{}, "id = ?", id).Error
	})
}
