package service

import (
	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

// MatchService evaluates students against company eligibility bars.
type MatchService struct {
	companies *store.CompanyStore
}

// NewMatchService creates a new MatchService. The company store has already
// rejected non-positive overall bars at load time, so Match never divides
// by zero.
func NewMatchService(companies *store.CompanyStore) *MatchService {
	return &MatchService{companies: companies}
}

// Match evaluates one student against one company. Eligibility requires both
// the overall and aptitude scores to meet the company's bars. The company's
// required_skills and min_cgpa are recorded on the record but intentionally
// not part of the check, matching the product's current behavior.
//
// The match percentage measures overachievement relative to the overall bar
// (not a similarity metric): floor(100 * overall / bar), capped at 100.
func (s *MatchService) Match(student *model.Student, company model.Company) model.CompanyMatch {
	req := company.Requirements
	eligible := student.OverallScore >= req.MinOverallScore &&
		student.AptitudeScore >= req.MinAptitudeScore

	pct := student.OverallScore * 100 / req.MinOverallScore
	if pct > 100 {
		pct = 100
	}

	return model.CompanyMatch{
		Company:         company,
		Eligible:        eligible,
		MatchPercentage: pct,
	}
}

// MatchAll evaluates one student against every company, in load order.
func (s *MatchService) MatchAll(student *model.Student) []model.CompanyMatch {
	companies := s.companies.List()
	matches := make([]model.CompanyMatch, 0, len(companies))
	for _, company := range companies {
		matches = append(matches, s.Match(student, company))
	}
	return matches
}
