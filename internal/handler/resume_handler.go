package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/response"
	"github.com/placeready/placeready-backend/internal/service"
	"github.com/placeready/placeready-backend/internal/validator"
)

// ResumeHandler handles resume analysis endpoints.
type ResumeHandler struct {
	resume *service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resume *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resume: resume}
}

// AnalyzeResume godoc
// POST /api/v1/resume/analyze
// Analyzes the supplied resume text. The body is optional: an empty request
// selects the randomized mock analyzer.
func (h *ResumeHandler) AnalyzeResume(c *gin.Context) {
	var req model.AnalyzeResumeRequest
	if c.Request.ContentLength > 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}

	analysis := h.resume.Analyze(c.Request.Context(), req.ResumeText)
	response.Success(c, http.StatusOK, analysis)
}
