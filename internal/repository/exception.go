package repository

import (
	"time"

	"session-booking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExceptionRepository handles database operations for rule exceptions
type ExceptionRepository struct {
	db *gorm.DB
}

// NewExceptionRepository creates a new rule exception repository
func NewExceptionRepository(db *gorm.DB) *ExceptionRepository {
	return &ExceptionRepository{db: db}
}

// Upsert inserts the exception, replacing any existing row for the same
// (rule_id, exception_date) key. A later edit to the same date supersedes
// the earlier one instead of duplicating it.
func (r *ExceptionRepository) Upsert(exception *models.RuleException) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rule_id"}, {Name: "exception_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_cancelled", "modified_datetime", "updated_at",
		}),
	}).Create(exception).Error
}

// GetByRuleAndDate retrieves the exception for one instance date of a rule
func (r *ExceptionRepository) GetByRuleAndDate(ruleID uuid.UUID, date time.Time) (*models.RuleException, error) {
	var exception models.RuleException
	err := r.db.
		Where("rule_id = ? AND exception_date = ?", ruleID, date.Format("2006-01-02")).
		First(&exception).Error
	if err != nil {
		return nil, err
	}
	return &exception, nil
}

// GetByRuleID retrieves all exceptions for a rule
func (r *ExceptionRepository) GetByRuleID(ruleID uuid.UUID) ([]models.RuleException, error) {
	var exceptions []models.RuleException
	err := r.db.Where("rule_id = ?", ruleID).Order("exception_date ASC").Find(&exceptions).Error
	return exceptions, err
}

// GetByRuleIDs retrieves all exceptions for a set of rules in one query
func (r *ExceptionRepository) GetByRuleIDs(ruleIDs []uuid.UUID) ([]models.RuleException, error) {
	if len(ruleIDs) == 0 {
		return nil, nil
	}
	var exceptions []models.RuleException
	err := r.db.Where("rule_id IN ?", ruleIDs).Order("exception_date ASC").Find(&exceptions).Error
	return exceptions, err
}

// Delete deletes a rule exception
func (r *ExceptionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RuleException{}, "id = ?", id).Error
}
