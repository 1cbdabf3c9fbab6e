// Package store holds the process-wide collections: built once at startup,
// read-only afterwards. Concurrent readers need no coordination because
// nothing mutates after construction.
package store

import (
	"errors"

	"github.com/placeready/placeready-backend/internal/model"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentStore is the immutable collection of generated student profiles.
type StudentStore struct {
	students []model.Student
	byID     map[string]int
}

// NewStudentStore indexes the given profiles. The slice order is preserved;
// the first element is the "current" demo student.
func NewStudentStore(students []model.Student) *StudentStore {
	byID := make(map[string]int, len(students))
	for i, s := range students {
		byID[s.ID] = i
	}
	return &StudentStore{students: students, byID: byID}
}

// List returns all student profiles in generation order.
func (s *StudentStore) List() []model.Student {
	return s.students
}

// GetByID retrieves a student profile by identifier.
func (s *StudentStore) GetByID(id string) (*model.Student, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return &s.students[i], nil
}

// First returns the first generated profile.
func (s *StudentStore) First() (*model.Student, error) {
	if len(s.students) == 0 {
		return nil, ErrStudentNotFound
	}
	return &s.students[0], nil
}

// Len reports the cohort size.
func (s *StudentStore) Len() int {
	return len(s.students)
}
