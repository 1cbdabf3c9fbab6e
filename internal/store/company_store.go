package store

import (
	"errors"
	"fmt"

	"github.com/placeready/placeready-backend/internal/model"
)

var (
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvalidRequirements marks a company record whose thresholds would
	// break match computation. Surfaced at startup, never per-request.
	ErrInvalidRequirements = errors.New("invalid company requirements")
)

// CompanyStore is the immutable collection of recruiting companies.
type CompanyStore struct {
	companies []model.Company
	byID      map[string]int
}

// NewCompanyStore validates and indexes the given companies. A non-positive
// minimum overall score would make the match percentage divide by zero, so
// it is rejected here rather than checked on every match.
func NewCompanyStore(companies []model.Company) (*CompanyStore, error) {
	byID := make(map[string]int, len(companies))
	for i, c := range companies {
		if c.Requirements.MinOverallScore <= 0 {
			return nil, fmt.Errorf("company %s (%s): min_overall_score must be positive: %w",
				c.ID, c.Name, ErrInvalidRequirements)
		}
		if c.Requirements.MinAptitudeScore < 0 {
			return nil, fmt.Errorf("company %s (%s): min_aptitude_score must not be negative: %w",
				c.ID, c.Name, ErrInvalidRequirements)
		}
		byID[c.ID] = i
	}
	return &CompanyStore{companies: companies, byID: byID}, nil
}

// List returns all companies in load order.
func (s *CompanyStore) List() []model.Company {
	return s.companies
}

// GetByID retrieves a company by identifier.
func (s *CompanyStore) GetByID(id string) (*model.Company, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	return &s.companies[i], nil
}
