package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeready/placeready-backend/internal/response"
	"github.com/placeready/placeready-backend/internal/service"
)

// AnalyticsHandler handles cohort analytics endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetCohortSummary godoc
// GET /api/v1/analytics/cohort
// Returns aggregate readiness statistics and remedial seminar suggestions.
func (h *AnalyticsHandler) GetCohortSummary(c *gin.Context) {
	summary, err := h.analytics.Summarize()
	if err != nil {
		if errors.Is(err, service.ErrEmptyCohort) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrEmptyCohort)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
