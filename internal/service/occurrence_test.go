package service_test

import (
	"testing"
	"time"

	"session-booking-backend/internal/database/models"
	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/mocks"
	"session-booking-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OccurrenceServiceTestSuite defines the test suite for OccurrenceService
type OccurrenceServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockOccRepo       *mocks.MockOccurrenceRepositoryInterface
	occurrenceService *service.OccurrenceService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OccurrenceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOccRepo = mocks.NewMockOccurrenceRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.occurrenceService = service.NewOccurrenceService(suite.mockOccRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *OccurrenceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OccurrenceServiceTestSuite) standalone(status models.OccurrenceStatus) *models.Occurrence {
	return &models.Occurrence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "One-time Session",
		StartDatetime:   time.Date(2024, 11, 20, 15, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          status,
	}
}

func (suite *OccurrenceServiceTestSuite) ruleDerived(status models.OccurrenceStatus) *models.Occurrence {
	occurrence := suite.standalone(status)
	ruleID := uuid.New()
	occurrence.RuleID = &ruleID
	return occurrence
}

// TestCreateStandalone tests creating a one-time occurrence
func (suite *OccurrenceServiceTestSuite) TestCreateStandalone() {
	req := &service.CreateOccurrenceRequest{
		Title:         "One-time Session",
		StartDatetime: time.Date(2024, 11, 20, 15, 0, 0, 0, time.UTC),
	}

	var captured *models.Occurrence
	suite.mockOccRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(occurrence *models.Occurrence) error {
			captured = occurrence
			return nil
		}).
		Times(1)

	response, err := suite.occurrenceService.CreateStandalone(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Nil(suite.T(), response.RuleID)
	assert.Equal(suite.T(), 60, response.DurationMinutes) // default
	assert.Equal(suite.T(), models.OccurrenceStatusScheduled, response.Status)
	assert.False(suite.T(), response.IsException)
	assert.Nil(suite.T(), captured.RuleID)
}

// TestCreateStandaloneInvalidDuration tests duration validation
func (suite *OccurrenceServiceTestSuite) TestCreateStandaloneInvalidDuration() {
	duration := 0
	req := &service.CreateOccurrenceRequest{
		Title:           "One-time Session",
		StartDatetime:   time.Date(2024, 11, 20, 15, 0, 0, 0, time.UTC),
		DurationMinutes: &duration,
	}

	response, err := suite.occurrenceService.CreateStandalone(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateStandaloneMissingTitle tests struct validation
func (suite *OccurrenceServiceTestSuite) TestCreateStandaloneMissingTitle() {
	req := &service.CreateOccurrenceRequest{
		StartDatetime: time.Date(2024, 11, 20, 15, 0, 0, 0, time.UTC),
	}

	response, err := suite.occurrenceService.CreateStandalone(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetOccurrenceNotFound tests retrieving a missing occurrence
func (suite *OccurrenceServiceTestSuite) TestGetOccurrenceNotFound() {
	id := uuid.New()

	suite.mockOccRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.occurrenceService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestUpdateMovesRuleDerivedOccurrence tests that moving a rule-derived
// occurrence flags it as an exception
func (suite *OccurrenceServiceTestSuite) TestUpdateMovesRuleDerivedOccurrence() {
	occurrence := suite.ruleDerived(models.OccurrenceStatusScheduled)
	newStart := time.Date(2024, 11, 20, 17, 0, 0, 0, time.UTC)
	req := &service.UpdateOccurrenceRequest{StartDatetime: &newStart}

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	suite.mockOccRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.occurrenceService.Update(occurrence.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newStart, response.StartDatetime)
	assert.True(suite.T(), response.IsException)
}

// TestUpdateMovesStandaloneOccurrence tests that moving a standalone
// occurrence does not flag it as an exception
func (suite *OccurrenceServiceTestSuite) TestUpdateMovesStandaloneOccurrence() {
	occurrence := suite.standalone(models.OccurrenceStatusScheduled)
	newStart := time.Date(2024, 11, 20, 17, 0, 0, 0, time.UTC)
	req := &service.UpdateOccurrenceRequest{StartDatetime: &newStart}

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	suite.mockOccRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.occurrenceService.Update(occurrence.ID, req)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsException)
}

// TestCancelOccurrence tests the scheduled -> cancelled transition
func (suite *OccurrenceServiceTestSuite) TestCancelOccurrence() {
	occurrence := suite.standalone(models.OccurrenceStatusScheduled)

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	suite.mockOccRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.occurrenceService.Cancel(occurrence.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OccurrenceStatusCancelled, response.Status)
}

// TestCancelAlreadyCancelled tests that cancelling twice conflicts
func (suite *OccurrenceServiceTestSuite) TestCancelAlreadyCancelled() {
	occurrence := suite.standalone(models.OccurrenceStatusCancelled)

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	response, err := suite.occurrenceService.Cancel(occurrence.ID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyCancelled)
	assert.True(suite.T(), apperrors.IsStateConflict(err))
}

// TestCompleteOccurrence tests the scheduled -> completed transition
func (suite *OccurrenceServiceTestSuite) TestCompleteOccurrence() {
	occurrence := suite.standalone(models.OccurrenceStatusScheduled)

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	suite.mockOccRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.occurrenceService.Complete(occurrence.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OccurrenceStatusCompleted, response.Status)
}

// TestCompleteAlreadyCompleted tests that completing twice conflicts
func (suite *OccurrenceServiceTestSuite) TestCompleteAlreadyCompleted() {
	occurrence := suite.standalone(models.OccurrenceStatusCompleted)

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	response, err := suite.occurrenceService.Complete(occurrence.ID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyCompleted)
}

// TestCompleteCancelledOccurrence tests that a cancelled occurrence can
// never be completed
func (suite *OccurrenceServiceTestSuite) TestCompleteCancelledOccurrence() {
	occurrence := suite.standalone(models.OccurrenceStatusCancelled)

	suite.mockOccRepo.EXPECT().
		GetByID(occurrence.ID).
		Return(occurrence, nil).
		Times(1)

	response, err := suite.occurrenceService.Complete(occurrence.ID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCancelledCannotComplete)
	assert.True(suite.T(), apperrors.IsStateConflict(err))
}

// TestListInRange tests listing occurrences in a window
func (suite *OccurrenceServiceTestSuite) TestListInRange() {
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Occurrence{*suite.standalone(models.OccurrenceStatusScheduled)}

	suite.mockOccRepo.EXPECT().
		GetInRange(start, end, gomock.Nil()).
		Return(rows, nil).
		Times(1)

	response, err := suite.occurrenceService.ListInRange(start, end, "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Total)
}

// TestListInRangeInvalidWindow tests the inverted-range guard
func (suite *OccurrenceServiceTestSuite) TestListInRangeInvalidWindow() {
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	response, err := suite.occurrenceService.ListInRange(start, end, "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestListInRangeInvalidStatus tests the status filter guard
func (suite *OccurrenceServiceTestSuite) TestListInRangeInvalidStatus() {
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	response, err := suite.occurrenceService.ListInRange(start, end, "postponed")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestOccurrenceServiceTestSuite runs the test suite
func TestOccurrenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OccurrenceServiceTestSuite))
}
