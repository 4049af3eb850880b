package handlers

import (
	"net/http"
	"time"

	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OccurrenceHandler handles HTTP requests for individual occurrences
type OccurrenceHandler struct {
	occurrenceService service.OccurrenceServiceInterface
}

// NewOccurrenceHandler creates a new occurrence handler
func NewOccurrenceHandler(occurrenceService service.OccurrenceServiceInterface) *OccurrenceHandler {
	return &OccurrenceHandler{
		occurrenceService: occurrenceService,
	}
}

// CreateOccurrence handles POST /api/v1/occurrences
// @Summary Create a standalone occurrence
// @Description Create a one-time session occurrence not attached to any recurrence rule
// @Tags occurrences
// @Accept json
// @Produce json
// @Param occurrence body service.CreateOccurrenceRequest true "Occurrence data"
// @Success 201 {object} service.OccurrenceResponse "Successfully created occurrence"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /occurrences [post]
func (h *OccurrenceHandler) CreateOccurrence(c *gin.Context) {
	var req service.CreateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.occurrenceService.CreateStandalone(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create occurrence", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListOccurrences handles GET /api/v1/occurrences
// @Summary List occurrences in a time range
// @Description Get materialized occurrences starting within [start, end), optionally filtered by status
// @Tags occurrences
// @Accept json
// @Produce json
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339, exclusive)"
// @Param status query string false "Filter by status (scheduled, cancelled, completed)"
// @Success 200 {object} service.OccurrenceListResponse "Successfully retrieved occurrences"
// @Failure 400 {object} map[string]interface{} "Invalid range parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /occurrences [get]
func (h *OccurrenceHandler) ListOccurrences(c *gin.Context) {
	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}

	resp, err := h.occurrenceService.ListInRange(start, end, c.Query("status"))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list occurrences", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOccurrence handles GET /api/v1/occurrences/:id
// @Summary Get occurrence by ID
// @Description Get a specific occurrence by its UUID
// @Tags occurrences
// @Accept json
// @Produce json
// @Param id path string true "Occurrence ID (UUID)"
// @Success 200 {object} service.OccurrenceResponse "Successfully retrieved occurrence"
// @Failure 400 {object} map[string]interface{} "Invalid occurrence ID"
// @Failure 404 {object} map[string]interface{} "Occurrence not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /occurrences/{id} [get]
func (h *OccurrenceHandler) GetOccurrence(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.occurrenceService.GetByID(id)
	if err != nil {
		h.respondError(c, err, "Failed to get occurrence")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateOccurrence handles PATCH /api/v1/occurrences/:id
// @Summary Update an occurrence
// @Description Partially update an occurrence; moving a rule-derived occurrence flags it as an exception
// @Tags occurrences
// @Accept json
// @Produce json
// @Param id path string true "Occurrence ID (UUID)"
// @Param occurrence body service.UpdateOccurrenceRequest true "Fields to update"
// @Success 200 {object} service.OccurrenceResponse "Successfully updated occurrence"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Occurrence not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /occurrences/{id} [patch]
func (h *OccurrenceHandler) UpdateOccurrence(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req service.UpdateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.occurrenceService.Update(id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update occurrence")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelOccurrence handles POST /api/v1/occurrences/:id/cancel
// @Summary Cancel an occurrence
// @Description Transition an occurrence to cancelled; cancelling twice is a conflict
// @Tags occurrences
// @Accept json
// @Produce json
// @Param id path string true "Occurrence ID (UUID)"
// @Success 200 {object} service.OccurrenceResponse "Successfully cancelled occurrence"
// @Failure 400 {object} map[string]interface{} "Invalid occurrence ID"
// @Failure 404 {object} map[string]interface{} "Occurrence not found"
// @Failure 409 {object} map[string]interface{} "Occurrence already cancelled"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /occurrences/{id}/cancel [post]
func (h *OccurrenceHandler) CancelOccurrence(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.occurrenceService.Cancel(id)
	if err != nil {
		h.respondError(c, err, "Failed to cancel occurrence")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteOccurrence handles POST /api/v1/occurrences/:id/complete
// @Summary Complete an occurrence
// @Description Transition an occurrence to completed; cancelled occurrences cannot be completed
// @Tags occurrences
// @Accept json
// @Produce json
// @Param id path string true "Occurrence ID (UUID)"
// @Success 200 {object} service.OccurrenceResponse "Successfully completed occurrence"
// @Failure 400 {object} map[string]interface{} "Invalid occurrence ID"
// @Failure 404 {object} map[string]interface{} "Occurrence not found"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /occurrences/{id}/complete [post]
func (h *OccurrenceHandler) CompleteOccurrence(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.occurrenceService.Complete(id)
	if err != nil {
		h.respondError(c, err, "Failed to complete occurrence")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OccurrenceHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid occurrence ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *OccurrenceHandler) respondError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsStateConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}

// parseTimeRange reads start/end query params, accepting RFC3339 or plain
// YYYY-MM-DD dates. A date-only end is exclusive at midnight.
func parseTimeRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := parseInstant(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start. Use RFC3339 or YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	end, err := parseInstant(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end. Use RFC3339 or YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func parseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
