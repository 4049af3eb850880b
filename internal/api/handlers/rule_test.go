package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/mocks"
	"session-booking-backend/internal/service"
	"session-booking-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RuleHandlerTestSuite defines the test suite for RuleHandler
type RuleHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockRuleService       *mocks.MockRuleServiceInterface
	mockGenerationService *mocks.MockGenerationServiceInterface
	handler               *RuleHandler
	httpSuite             *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RuleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRuleService = mocks.NewMockRuleServiceInterface(suite.ctrl)
	suite.mockGenerationService = mocks.NewMockGenerationServiceInterface(suite.ctrl)

	suite.handler = NewRuleHandler(suite.mockRuleService, suite.mockGenerationService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	rules := v1.Group("/rules")
	{
		rules.GET("", suite.handler.ListRules)
		rules.POST("", suite.handler.CreateRule)
		rules.POST("/generate", suite.handler.GenerateOccurrences)
		rules.GET("/:id", suite.handler.GetRule)
		rules.PATCH("/:id", suite.handler.UpdateRule)
		rules.DELETE("/:id", suite.handler.DeleteRule)
		rules.PATCH("/:id/occurrences/:date", suite.handler.ManageRuleOccurrence)
		rules.DELETE("/:id/occurrences/:date", suite.handler.CancelRuleOccurrence)
	}
}

// TearDownTest cleans up after each test
func (suite *RuleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func ruleResponse(id uuid.UUID) service.RuleResponse {
	return service.RuleResponse{
		ID:              id,
		Title:           "Weekly Session",
		Weekday:         0,
		TimeOfDay:       "10:00",
		DurationMinutes: 60,
		StartDate:       "2024-11-04",
		IsActive:        true,
		CreatedAt:       "2024-11-01T00:00:00Z",
		UpdatedAt:       "2024-11-01T00:00:00Z",
	}
}

// TestCreateRule tests creating a rule
func (suite *RuleHandlerTestSuite) TestCreateRule() {
	ruleID := uuid.New()
	requestBody := map[string]interface{}{
		"title":       "Weekly Session",
		"weekday":     0,
		"time_of_day": "10:00",
		"start_date":  "2024-11-04T00:00:00Z",
	}

	expectedResponse := &service.RuleWithGenerationResponse{
		Rule:               ruleResponse(ruleID),
		OccurrencesCreated: 0,
	}

	suite.mockRuleService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rules", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.RuleWithGenerationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Weekly Session", response.Rule.Title)
	assert.Equal(suite.T(), "10:00", response.Rule.TimeOfDay)
}

// TestCreateRuleValidationError tests the 400 mapping for validation errors
func (suite *RuleHandlerTestSuite) TestCreateRuleValidationError() {
	requestBody := map[string]interface{}{
		"title":       "Weekly Session",
		"weekday":     0,
		"time_of_day": "25:99",
		"start_date":  "2024-11-04T00:00:00Z",
	}

	suite.mockRuleService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("time_of_day", "time of day must be in HH:MM format")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rules", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "time_of_day")
}

// TestCreateRuleInvalidBody tests malformed JSON
func (suite *RuleHandlerTestSuite) TestCreateRuleInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rules", "not an object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestGetRule tests retrieving a rule
func (suite *RuleHandlerTestSuite) TestGetRule() {
	ruleID := uuid.New()
	expected := ruleResponse(ruleID)

	suite.mockRuleService.EXPECT().
		GetByID(ruleID).
		Return(&expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rules/"+ruleID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.RuleResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), ruleID, response.ID)
}

// TestGetRuleNotFound tests the 404 mapping
func (suite *RuleHandlerTestSuite) TestGetRuleNotFound() {
	ruleID := uuid.New()

	suite.mockRuleService.EXPECT().
		GetByID(ruleID).
		Return(nil, apperrors.ErrRuleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rules/"+ruleID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestGetRuleInvalidID tests the invalid-UUID guard
func (suite *RuleHandlerTestSuite) TestGetRuleInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rules/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid rule ID")
}

// TestUpdateRuleDefaultsToPropagate tests that propagation is on by default
func (suite *RuleHandlerTestSuite) TestUpdateRuleDefaultsToPropagate() {
	ruleID := uuid.New()
	expected := ruleResponse(ruleID)
	requestBody := map[string]interface{}{"time_of_day": "09:00"}

	suite.mockRuleService.EXPECT().
		Update(ruleID, gomock.Any(), true).
		Return(&expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/rules/"+ruleID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateRulePropagateDisabled tests propagate=false pass-through
func (suite *RuleHandlerTestSuite) TestUpdateRulePropagateDisabled() {
	ruleID := uuid.New()
	expected := ruleResponse(ruleID)
	requestBody := map[string]interface{}{"title": "Renamed"}

	suite.mockRuleService.EXPECT().
		Update(ruleID, gomock.Any(), false).
		Return(&expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/rules/"+ruleID.String()+"?propagate=false", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteRuleCascade tests cascade deletion (the default)
func (suite *RuleHandlerTestSuite) TestDeleteRuleCascade() {
	ruleID := uuid.New()

	suite.mockRuleService.EXPECT().
		Delete(ruleID, true).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rules/"+ruleID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteRuleNoCascade tests cascade=false pass-through
func (suite *RuleHandlerTestSuite) TestDeleteRuleNoCascade() {
	ruleID := uuid.New()

	suite.mockRuleService.EXPECT().
		Delete(ruleID, false).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rules/"+ruleID.String()+"?cascade=false", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestCancelRuleOccurrence tests DELETE on a single instance date
func (suite *RuleHandlerTestSuite) TestCancelRuleOccurrence() {
	ruleID := uuid.New()
	date := time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC)

	suite.mockRuleService.EXPECT().
		CancelOccurrenceDate(ruleID, date).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rules/"+ruleID.String()+"/occurrences/2024-11-18", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestCancelRuleOccurrenceWrongWeekday tests the 400 mapping for
// invalid-occurrence-date errors
func (suite *RuleHandlerTestSuite) TestCancelRuleOccurrenceWrongWeekday() {
	ruleID := uuid.New()
	date := time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC)

	suite.mockRuleService.EXPECT().
		CancelOccurrenceDate(ruleID, date).
		Return(apperrors.NewInvalidOccurrenceDateError(date, "date does not fall on the rule's weekday")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rules/"+ruleID.String()+"/occurrences/2024-11-19", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid occurrence date")
}

// TestCancelRuleOccurrenceBadDate tests the date format guard
func (suite *RuleHandlerTestSuite) TestCancelRuleOccurrenceBadDate() {
	ruleID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rules/"+ruleID.String()+"/occurrences/18-11-2024", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid date format")
}

// TestManageRuleOccurrenceReschedule tests PATCH with new_datetime
func (suite *RuleHandlerTestSuite) TestManageRuleOccurrenceReschedule() {
	ruleID := uuid.New()
	date := time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC)
	newDatetime := time.Date(2024, 11, 25, 11, 0, 0, 0, time.UTC)
	requestBody := map[string]interface{}{"new_datetime": "2024-11-25T11:00:00Z"}

	suite.mockRuleService.EXPECT().
		RescheduleOccurrenceDate(ruleID, date, newDatetime).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/rules/"+ruleID.String()+"/occurrences/2024-11-25", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestManageRuleOccurrenceCancel tests PATCH with cancel=true
func (suite *RuleHandlerTestSuite) TestManageRuleOccurrenceCancel() {
	ruleID := uuid.New()
	date := time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC)
	requestBody := map[string]interface{}{"cancel": true}

	suite.mockRuleService.EXPECT().
		CancelOccurrenceDate(ruleID, date).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/rules/"+ruleID.String()+"/occurrences/2024-11-18", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestManageRuleOccurrenceEmptyBody tests that neither field is a 400
func (suite *RuleHandlerTestSuite) TestManageRuleOccurrenceEmptyBody() {
	ruleID := uuid.New()
	requestBody := map[string]interface{}{}

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/rules/"+ruleID.String()+"/occurrences/2024-11-18", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "new_datetime or cancel")
}

// TestGenerateOccurrences tests the bulk generation entry point
func (suite *RuleHandlerTestSuite) TestGenerateOccurrences() {
	requestBody := map[string]interface{}{"months_ahead": 3}

	suite.mockGenerationService.EXPECT().
		GenerateAll(service.Horizon{MonthsAhead: 3}).
		Return(12, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rules/generate", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(12), response["occurrences_created"])
}

// TestGenerateOccurrencesServiceError tests the 500 mapping
func (suite *RuleHandlerTestSuite) TestGenerateOccurrencesServiceError() {
	requestBody := map[string]interface{}{"days_ahead": 7}

	suite.mockGenerationService.EXPECT().
		GenerateAll(gomock.Any()).
		Return(0, fmt.Errorf("database unavailable")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rules/generate", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to generate occurrences")
}

// TestRuleHandlerTestSuite runs the test suite
func TestRuleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}
