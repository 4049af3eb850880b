package handlers

import (
	"fmt"
	"net/http"
	"time"

	apperrors "session-booking-backend/internal/errors"
	"session-booking-backend/internal/service"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the resolved calendar view: recurrence rules
// expanded on the fly, exceptions applied, standalone occurrences merged.
type CalendarHandler struct {
	resolver service.ResolverInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(resolver service.ResolverInterface) *CalendarHandler {
	return &CalendarHandler{
		resolver: resolver,
	}
}

// CalendarResponse represents the resolved calendar for a time range
type CalendarResponse struct {
	Start       time.Time                    `json:"start"`
	End         time.Time                    `json:"end"`
	Occurrences []service.ResolvedOccurrence `json:"occurrences"`
	Total       int                          `json:"total"`
}

// GetCalendar handles GET /api/v1/calendar
// @Summary Resolve the calendar for a time range
// @Description Expand active recurrence rules within [start, end), apply exceptions and merge standalone occurrences, sorted by start instant
// @Tags calendar
// @Accept json
// @Produce json
// @Param start query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Range end (RFC3339 or YYYY-MM-DD, exclusive)"
// @Success 200 {object} CalendarResponse "Resolved occurrences"
// @Failure 400 {object} map[string]interface{} "Invalid range parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}

	resolved, err := h.resolver.ResolveInRange(start, end)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve calendar", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CalendarResponse{
		Start:       start,
		End:         end,
		Occurrences: resolved,
		Total:       len(resolved),
	})
}

// GetCalendarFeed handles GET /api/v1/calendar/feed.ics
// @Summary Export the calendar as an iCalendar feed
// @Description Serialize the resolved occurrences for a time range as an ICS document
// @Tags calendar
// @Accept json
// @Produce plain
// @Param start query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Range end (RFC3339 or YYYY-MM-DD, exclusive)"
// @Success 200 {string} string "ICS feed"
// @Failure 400 {object} map[string]interface{} "Invalid range parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /calendar/feed.ics [get]
func (h *CalendarHandler) GetCalendarFeed(c *gin.Context) {
	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}

	resolved, err := h.resolver.ResolveInRange(start, end)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve calendar", "details": err.Error()})
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//session-booking-backend//EN")

	for i := range resolved {
		occ := &resolved[i]
		event := cal.AddEvent(feedEventUID(occ))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(occ.StartDatetime)
		event.SetEndAt(occ.StartDatetime.Add(time.Duration(occ.DurationMinutes) * time.Minute))
		event.SetSummary(occ.Title)
		if occ.Description != "" {
			event.SetDescription(occ.Description)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="sessions.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

// feedEventUID builds a stable UID so re-fetching the feed updates events
// in place instead of duplicating them.
func feedEventUID(occ *service.ResolvedOccurrence) string {
	if occ.OccurrenceID != nil {
		return fmt.Sprintf("%s@session-booking", occ.OccurrenceID)
	}
	return fmt.Sprintf("%s-%s@session-booking", occ.RuleID, occ.OccurrenceDate)
}
