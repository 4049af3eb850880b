//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"session-booking-backend/internal/database/models"
	"session-booking-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RuleRepositoryTestSuite tests the RuleRepository
type RuleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RuleRepository
	occRepo       *OccurrenceRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RuleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRuleRepository(suite.baseTestSuite.DB)
	suite.occRepo = NewOccurrenceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RuleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RuleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RuleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new rule
func (suite *RuleRepositoryTestSuite) TestCreate() {
	rule := suite.factories.Rule.Create()

	err := suite.repo.Create(rule)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, rule.ID)
	suite.NotZero(rule.CreatedAt)
	suite.NotZero(rule.UpdatedAt)
}

// TestCreateWithOccurrences tests that the rule and its instances commit
// together and each instance is stamped with the rule's ID
func (suite *RuleRepositoryTestSuite) TestCreateWithOccurrences() {
	rule := suite.factories.Rule.Create()
	occurrences := []models.Occurrence{
		*suite.factories.Occurrence.ForRule(rule, time.Date(2024, 11, 4, 10, 0, 0, 0, time.UTC)),
		*suite.factories.Occurrence.ForRule(rule, time.Date(2024, 11, 11, 10, 0, 0, 0, time.UTC)),
	}
	// Clear the factory's backfill so the transaction has to do it
	occurrences[0].RuleID = nil
	occurrences[1].RuleID = nil

	err := suite.repo.CreateWithOccurrences(rule, occurrences)

	suite.NoError(err)

	stored, err := suite.occRepo.GetInRange(
		time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		nil,
	)
	suite.NoError(err)
	suite.Len(stored, 2)
	for _, occ := range stored {
		suite.NotNil(occ.RuleID)
		suite.Equal(rule.ID, *occ.RuleID)
	}
}

// TestCreateWithOccurrencesEmpty tests creating a rule with no instances
func (suite *RuleRepositoryTestSuite) TestCreateWithOccurrencesEmpty() {
	rule := suite.factories.Rule.Create()

	err := suite.repo.CreateWithOccurrences(rule, nil)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(rule.ID)
	suite.NoError(err)
	suite.Equal(rule.ID, retrieved.ID)
}

// TestGetByID tests retrieving a rule by ID
func (suite *RuleRepositoryTestSuite) TestGetByID() {
	rule := suite.factories.Rule.Create()
	err := suite.repo.Create(rule)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(rule.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(rule.ID, retrieved.ID)
	suite.Equal(rule.Title, retrieved.Title)
	suite.Equal(rule.Weekday, retrieved.Weekday)
	suite.Equal(rule.TimeOfDay, retrieved.TimeOfDay)
}

// TestGetByIDNotFound tests retrieving a non-existent rule
func (suite *RuleRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests pagination over all rules
func (suite *RuleRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		rule := suite.factories.Rule.Create()
		rule.StartDate = rule.StartDate.AddDate(0, 0, 7*i)
		suite.NoError(suite.repo.Create(rule))
	}

	rules, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rules, 2)
	suite.True(rules[0].StartDate.Before(rules[1].StartDate))

	rules, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rules, 1)
}

// TestGetActive tests that deactivated rules are filtered out
func (suite *RuleRepositoryTestSuite) TestGetActive() {
	active := suite.factories.Rule.Create()
	suite.NoError(suite.repo.Create(active))

	inactive := suite.factories.Rule.Inactive()
	suite.NoError(suite.repo.Create(inactive))

	rules, err := suite.repo.GetActive()

	suite.NoError(err)
	suite.Len(rules, 1)
	suite.Equal(active.ID, rules[0].ID)
}

// TestGetActiveInWindow tests window overlap filtering, including rules
// with no end date
func (suite *RuleRepositoryTestSuite) TestGetActiveInWindow() {
	// Unbounded rule starting 2024-11-04: overlaps any window from then on
	unbounded := suite.factories.Rule.Create()
	suite.NoError(suite.repo.Create(unbounded))

	// Rule that ended before the window
	ended := suite.factories.Rule.WithEndDate(time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC))
	ended.StartDate = time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(ended))

	// Rule that starts after the window
	future := suite.factories.Rule.Create()
	future.StartDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(future))

	// Inactive rule inside the window
	inactive := suite.factories.Rule.Inactive()
	suite.NoError(suite.repo.Create(inactive))

	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	rules, err := suite.repo.GetActiveInWindow(start, end)

	suite.NoError(err)
	suite.Len(rules, 1)
	suite.Equal(unbounded.ID, rules[0].ID)
}

// TestGetActiveInWindowEndDateOnWindowStart tests that a rule ending
// exactly on the window start still overlaps
func (suite *RuleRepositoryTestSuite) TestGetActiveInWindowEndDateOnWindowStart() {
	rule := suite.factories.Rule.WithEndDate(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC))
	rule.StartDate = time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(rule))

	rules, err := suite.repo.GetActiveInWindow(
		time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	)

	suite.NoError(err)
	suite.Len(rules, 1)
}

// TestUpdate tests updating rule fields
func (suite *RuleRepositoryTestSuite) TestUpdate() {
	rule := suite.factories.Rule.Create()
	suite.NoError(suite.repo.Create(rule))

	rule.Title = "Renamed Session"
	rule.TimeOfDay = "09:30"
	rule.IsActive = false

	err := suite.repo.Update(rule)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(rule.ID)
	suite.NoError(err)
	suite.Equal("Renamed Session", retrieved.Title)
	suite.Equal("09:30", retrieved.TimeOfDay)
	suite.False(retrieved.IsActive)
}

// TestDeleteDetachesOccurrences tests that deleting a rule detaches its
// remaining occurrences instead of removing them
func (suite *RuleRepositoryTestSuite) TestDeleteDetachesOccurrences() {
	rule := suite.factories.Rule.Create()
	suite.NoError(suite.repo.Create(rule))

	occ := suite.factories.Occurrence.ForRule(rule, time.Date(2024, 11, 4, 10, 0, 0, 0, time.UTC))
	suite.NoError(suite.occRepo.Create(occ))

	err := suite.repo.Delete(rule.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(rule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	detached, err := suite.occRepo.GetByID(occ.ID)
	suite.NoError(err)
	suite.Nil(detached.RuleID)
}

// TestDeleteWithFutureOccurrences tests that only rows at or after the
// cutoff are deleted with the rule; earlier rows survive as detached
// session history
func (suite *RuleRepositoryTestSuite) TestDeleteWithFutureOccurrences() {
	rule := suite.factories.Rule.Create()
	suite.NoError(suite.repo.Create(rule))

	past := suite.factories.Occurrence.ForRule(rule, time.Date(2024, 11, 4, 10, 0, 0, 0, time.UTC))
	future := suite.factories.Occurrence.ForRule(rule, time.Date(2024, 11, 18, 10, 0, 0, 0, time.UTC))
	suite.NoError(suite.occRepo.Create(past))
	suite.NoError(suite.occRepo.Create(future))

	cutoff := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)

	err := suite.repo.DeleteWithFutureOccurrences(rule.ID, cutoff)
	suite.NoError(err)

	_, err = suite.repo.GetByID(rule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.occRepo.GetByID(future.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	kept, err := suite.occRepo.GetByID(past.ID)
	suite.NoError(err)
	suite.Nil(kept.RuleID)
}

// TestRuleRepositoryTestSuite runs the test suite
func TestRuleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RuleRepositoryTestSuite))
}
