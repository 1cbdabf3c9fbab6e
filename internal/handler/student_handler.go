package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeready/placeready-backend/internal/response"
	"github.com/placeready/placeready-backend/internal/service"
	"github.com/placeready/placeready-backend/internal/store"
)

// StudentHandler handles student profile endpoints.
type StudentHandler struct {
	students *store.StudentStore
	resolver service.IdentityResolver
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(students *store.StudentStore, resolver service.IdentityResolver) *StudentHandler {
	return &StudentHandler{students: students, resolver: resolver}
}

// ListStudents godoc
// GET /api/v1/students
// Lists all generated student profiles.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"students": h.students.List()})
}

// GetStudent godoc
// GET /api/v1/students/:id
// Fetches one profile by id. The id "current" resolves to the acting
// student's profile.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}
