package repository

import (
	"errors"
	"time"

	"session-booking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccurrenceRepository handles database operations for session occurrences
type OccurrenceRepository struct {
	db *gorm.DB
}

// NewOccurrenceRepository creates a new occurrence repository
func NewOccurrenceRepository(db *gorm.DB) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

// Create creates a new occurrence
func (r *OccurrenceRepository) Create(occurrence *models.Occurrence) error {
	return r.db.Create(occurrence).Error
}

// CreateBatch bulk-inserts occurrences
func (r *OccurrenceRepository) CreateBatch(occurrences []models.Occurrence) error {
	if len(occurrences) == 0 {
		return nil
	}
	return r.db.Create(&occurrences).Error
}

// GetByID retrieves an occurrence by ID
func (r *OccurrenceRepository) GetByID(id uuid.UUID) (*models.Occurrence, error) {
	var occurrence models.Occurrence
	err := r.db.First(&occurrence, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &occurrence, nil
}

// GetInRange retrieves occurrences whose start_datetime falls in
// [start, end), optionally filtered by status, ordered ascending.
func (r *OccurrenceRepository) GetInRange(start, end time.Time, status *models.OccurrenceStatus) ([]models.Occurrence, error) {
	var occurrences []models.Occurrence

	query := r.db.Where("start_datetime >= ? AND start_datetime < ?", start, end)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Order("start_datetime ASC").Find(&occurrences).Error
	return occurrences, err
}

// ExistsForRuleAt reports whether a rule already has an occurrence at the
// exact start instant. Generation checks this before inserting so that
// re-running never duplicates.
func (r *OccurrenceRepository) ExistsForRuleAt(ruleID uuid.UUID, startDatetime time.Time) (bool, error) {
	var occurrence models.Occurrence
	err := r.db.
		Where("rule_id = ? AND start_datetime = ?", ruleID, startDatetime).
		First(&occurrence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Update updates an occurrence
func (r *OccurrenceRepository) Update(occurrence *models.Occurrence) error {
	return r.db.Save(occurrence).Error
}

// UpdateFutureFromTemplate applies template field updates to a rule's
// future, scheduled, non-exception occurrences. Past rows and rows already
// edited away from the template are left untouched.
func (r *OccurrenceRepository) UpdateFutureFromTemplate(ruleID uuid.UUID, from time.Time, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Occurrence{}).
		Where("rule_id = ?", ruleID).
		Where("start_datetime >= ?", from).
		Where("is_exception = ?", false).
		Where("status = ?", models.OccurrenceStatusScheduled).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// ShiftFutureTimeOfDay moves a rule's future, scheduled, non-exception
// occurrences to a new wall-clock time while keeping their dates. Runs as a
// single statement so the fan-out is atomic.
func (r *OccurrenceRepository) ShiftFutureTimeOfDay(ruleID uuid.UUID, from time.Time, timeOfDay string) (int64, error) {
	result := r.db.Model(&models.Occurrence{}).
		Where("rule_id = ?", ruleID).
		Where("start_datetime >= ?", from).
		Where("is_exception = ?", false).
		Where("status = ?", models.OccurrenceStatusScheduled).
		Update("start_datetime", gorm.Expr("date_trunc('day', start_datetime) + ?::interval", timeOfDay))
	return result.RowsAffected, result.Error
}

// GetUpcoming retrieves scheduled occurrences from now on, soonest first
func (r *OccurrenceRepository) GetUpcoming(limit, offset int) ([]models.Occurrence, int64, error) {
	var occurrences []models.Occurrence
	var total int64

	query := r.db.Model(&models.Occurrence{}).
		Where("status = ? AND start_datetime >= ?", models.OccurrenceStatusScheduled, time.Now())

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_datetime ASC").Limit(limit).Offset(offset).Find(&occurrences).Error
	return occurrences, total, err
}

// Delete deletes an occurrence
func (r *OccurrenceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Occurrence{}, "id = ?", id).Error
}
