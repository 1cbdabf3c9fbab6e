package service

import (
	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

// CurrentStudentID is the demo sentinel meaning "the acting student". It
// stands in for session-derived identity; swapping in a real session lookup
// only requires another IdentityResolver implementation.
const CurrentStudentID = "current"

// IdentityResolver resolves a student identifier, including the sentinel,
// to a concrete profile.
type IdentityResolver interface {
	Resolve(id string) (*model.Student, error)
}

// FirstStudentResolver maps the sentinel to the first generated profile.
type FirstStudentResolver struct {
	students *store.StudentStore
}

// NewFirstStudentResolver creates a resolver over the given store.
func NewFirstStudentResolver(students *store.StudentStore) *FirstStudentResolver {
	return &FirstStudentResolver{students: students}
}

// Resolve returns the profile for id, or the first profile for the sentinel.
func (r *FirstStudentResolver) Resolve(id string) (*model.Student, error) {
	if id == CurrentStudentID {
		return r.students.First()
	}
	return r.students.GetByID(id)
}
