package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeready/placeready-backend/internal/response"
	"github.com/placeready/placeready-backend/internal/service"
	"github.com/placeready/placeready-backend/internal/store"
)

// CompanyHandler handles company listing and matching endpoints.
type CompanyHandler struct {
	companies *store.CompanyStore
	matcher   *service.MatchService
	resolver  service.IdentityResolver
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companies *store.CompanyStore, matcher *service.MatchService, resolver service.IdentityResolver) *CompanyHandler {
	return &CompanyHandler{companies: companies, matcher: matcher, resolver: resolver}
}

// ListCompanies godoc
// GET /api/v1/companies
// Lists all recruiting companies and their requirement bars.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"companies": h.companies.List()})
}

// GetMatches godoc
// GET /api/v1/company-matches/:id
// Evaluates the student (or "current") against every company.
func (h *CompanyHandler) GetMatches(c *gin.Context) {
	student, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	matches := h.matcher.MatchAll(student)
	response.Success(c, http.StatusOK, gin.H{"matches": matches})
}
