package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/response"
	"github.com/placeready/placeready-backend/internal/service"
	"github.com/placeready/placeready-backend/internal/store"
	"github.com/placeready/placeready-backend/internal/validator"
)

// SoftSkillsHandler handles soft-skills test endpoints.
type SoftSkillsHandler struct {
	bank       *store.SoftSkillsBank
	grading    *service.SoftSkillsService
	sampleSize int
}

// NewSoftSkillsHandler creates a new SoftSkillsHandler.
func NewSoftSkillsHandler(bank *store.SoftSkillsBank, grading *service.SoftSkillsService, sampleSize int) *SoftSkillsHandler {
	return &SoftSkillsHandler{bank: bank, grading: grading, sampleSize: sampleSize}
}

// GetQuestions godoc
// GET /api/v1/soft-skills/questions
// Samples scenario questions with the correct-answer index stripped.
func (h *SoftSkillsHandler) GetQuestions(c *gin.Context) {
	if h.bank.Len() == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNoQuestions)
		return
	}

	sampled := h.bank.Sample(h.sampleSize)
	payload := make([]model.SoftSkillsQuestionPayload, 0, len(sampled))
	for _, q := range sampled {
		payload = append(payload, q.Payload())
	}

	response.Success(c, http.StatusOK, gin.H{"questions": payload})
}

// SubmitTest godoc
// POST /api/v1/soft-skills/submit
// Grades a soft-skills submission with a per-category breakdown.
func (h *SoftSkillsHandler) SubmitTest(c *gin.Context) {
	var req model.SubmitAnswersRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := h.grading.Grade(req.Answers)
	response.Success(c, http.StatusOK, result)
}
