package handlers

import (
	"net/http"
	"strconv"
	"time"

	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RuleHandler handles HTTP requests for recurrence rules
type RuleHandler struct {
	ruleService       service.RuleServiceInterface
	generationService service.GenerationServiceInterface
}

// NewRuleHandler creates a new recurrence rule handler
func NewRuleHandler(ruleService service.RuleServiceInterface, generationService service.GenerationServiceInterface) *RuleHandler {
	return &RuleHandler{
		ruleService:       ruleService,
		generationService: generationService,
	}
}

// OccurrenceDateRequest is the body for PATCH /rules/:id/occurrences/:date.
// Either Cancel is true or NewDatetime is set.
type OccurrenceDateRequest struct {
	NewDatetime *time.Time `json:"new_datetime,omitempty"`
	Cancel      bool       `json:"cancel,omitempty"`
}

// GenerateRequest is the body for the bulk generation entry point
type GenerateRequest struct {
	DaysAhead   int `json:"days_ahead,omitempty"`
	MonthsAhead int `json:"months_ahead,omitempty"`
}

// CreateRule handles POST /api/v1/rules
// @Summary Create a recurrence rule
// @Description Create a weekly recurrence rule, optionally materializing its initial occurrences
// @Tags rules
// @Accept json
// @Produce json
// @Param rule body service.CreateRuleRequest true "Rule data"
// @Success 201 {object} service.RuleWithGenerationResponse "Successfully created rule"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req service.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.ruleService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListRules handles GET /api/v1/rules
// @Summary List recurrence rules
// @Description Get recurrence rules with pagination support
// @Tags rules
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RuleListResponse "Successfully retrieved rules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.ruleService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRule handles GET /api/v1/rules/:id
// @Summary Get rule by ID
// @Description Get a specific recurrence rule by its UUID
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.RuleResponse "Successfully retrieved rule"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID: invalid UUID format"})
		return
	}

	resp, err := h.ruleService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateRule handles PATCH /api/v1/rules/:id
// @Summary Update a recurrence rule
// @Description Update template fields; with propagate=true the edit fans out to future non-exception scheduled occurrences
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param propagate query bool false "Rewrite future occurrences to match" default(true)
// @Param rule body service.UpdateRuleRequest true "Fields to update"
// @Success 200 {object} service.RuleResponse "Successfully updated rule"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules/{id} [patch]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID: invalid UUID format"})
		return
	}

	var req service.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	propagate := c.DefaultQuery("propagate", "true") == "true"

	resp, err := h.ruleService.Update(id, &req, propagate)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rule", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteRule handles DELETE /api/v1/rules/:id
// @Summary Delete or deactivate a recurrence rule
// @Description With cascade=true the rule and its future occurrences are deleted; otherwise the rule is deactivated and history is preserved
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param cascade query bool false "Delete future occurrences too" default(true)
// @Success 200 {object} map[string]interface{} "Successfully deleted rule"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID: invalid UUID format"})
		return
	}

	cascade := c.DefaultQuery("cascade", "true") == "true"

	if err := h.ruleService.Delete(id, cascade); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted", "cascade": cascade})
}

// CancelRuleOccurrence handles DELETE /api/v1/rules/:id/occurrences/:date
// @Summary Cancel one occurrence of a rule
// @Description Cancel the instance on a calendar date by recording a cancellation exception
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param date path string true "Occurrence date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Occurrence cancelled"
// @Failure 400 {object} map[string]interface{} "Invalid date or wrong weekday"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules/{id}/occurrences/{date} [delete]
func (h *RuleHandler) CancelRuleOccurrence(c *gin.Context) {
	id, date, ok := h.parseRuleAndDate(c)
	if !ok {
		return
	}

	if err := h.ruleService.CancelOccurrenceDate(id, date); err != nil {
		h.respondOccurrenceDateError(c, err, "Failed to cancel occurrence")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Occurrence on " + date.Format("2006-01-02") + " has been cancelled"})
}

// ManageRuleOccurrence handles PATCH /api/v1/rules/:id/occurrences/:date
// @Summary Reschedule or cancel one occurrence of a rule
// @Description Move the instance on a calendar date to a new datetime, or cancel it
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param date path string true "Occurrence date (YYYY-MM-DD)"
// @Param body body OccurrenceDateRequest true "New datetime or cancel flag"
// @Success 200 {object} map[string]interface{} "Occurrence updated"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules/{id}/occurrences/{date} [patch]
func (h *RuleHandler) ManageRuleOccurrence(c *gin.Context) {
	id, date, ok := h.parseRuleAndDate(c)
	if !ok {
		return
	}

	var req OccurrenceDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	switch {
	case req.Cancel:
		if err := h.ruleService.CancelOccurrenceDate(id, date); err != nil {
			h.respondOccurrenceDateError(c, err, "Failed to cancel occurrence")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Occurrence on " + date.Format("2006-01-02") + " has been cancelled"})
	case req.NewDatetime != nil:
		if err := h.ruleService.RescheduleOccurrenceDate(id, date, *req.NewDatetime); err != nil {
			h.respondOccurrenceDateError(c, err, "Failed to reschedule occurrence")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Occurrence on " + date.Format("2006-01-02") + " has been moved",
			"new_datetime": req.NewDatetime,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either new_datetime or cancel must be provided"})
	}
}

// GenerateOccurrences handles POST /api/v1/rules/generate
// @Summary Generate occurrences for all active rules
// @Description Materialize occurrences up to the given horizon for every active rule; idempotent
// @Tags rules
// @Accept json
// @Produce json
// @Param body body GenerateRequest false "Horizon in days or months"
// @Success 200 {object} map[string]interface{} "Total occurrences created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rules/generate [post]
func (h *RuleHandler) GenerateOccurrences(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	total, err := h.generationService.GenerateAll(service.Horizon{
		DaysAhead:   req.DaysAhead,
		MonthsAhead: req.MonthsAhead,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate occurrences", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"occurrences_created": total})
}

func (h *RuleHandler) parseRuleAndDate(c *gin.Context) (uuid.UUID, time.Time, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID: invalid UUID format"})
		return uuid.Nil, time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return uuid.Nil, time.Time{}, false
	}

	return id, date, true
}

func (h *RuleHandler) respondOccurrenceDateError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsInvalidOccurrenceDate(err), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
