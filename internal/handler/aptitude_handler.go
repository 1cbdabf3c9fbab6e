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

// AptitudeHandler handles aptitude test endpoints.
type AptitudeHandler struct {
	bank       *store.QuestionBank
	grading    *service.GradingService
	sampleSize int
}

// NewAptitudeHandler creates a new AptitudeHandler.
func NewAptitudeHandler(bank *store.QuestionBank, grading *service.GradingService, sampleSize int) *AptitudeHandler {
	return &AptitudeHandler{bank: bank, grading: grading, sampleSize: sampleSize}
}

// GetQuestions godoc
// GET /api/v1/aptitude/questions
// Samples up to the configured number of questions for a practice session.
//
// The payload includes correct_answer so the practice UI can grade locally.
// This is a known data leak; a hardened deployment should strip it the way
// the soft-skills payload does.
func (h *AptitudeHandler) GetQuestions(c *gin.Context) {
	questions := h.bank.Sample(h.sampleSize)
	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// SubmitTest godoc
// POST /api/v1/aptitude/submit
// Grades a mapping of question id to selected option index.
func (h *AptitudeHandler) SubmitTest(c *gin.Context) {
	var req model.SubmitAnswersRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := h.grading.Grade(req.Answers)
	response.Success(c, http.StatusOK, result)
}
