package model

// Company represents a recruiting company and its eligibility bars.
type Company struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Requirements Requirements `json:"requirements"`
}

// Requirements holds a company's minimum thresholds. RequiredSkills and
// MinCGPA are recorded and served to clients but are not part of the
// eligibility check; see MatchService.Match.
type Requirements struct {
	MinOverallScore  int      `json:"min_overall_score"`
	MinAptitudeScore int      `json:"min_aptitude_score"`
	RequiredSkills   []string `json:"required_skills"`
	MinCGPA          float64  `json:"min_cgpa"`
}

// CompanyMatch is the result of evaluating one student against one company.
// MatchPercentage measures overachievement relative to the company's overall
// bar, capped at 100.
type CompanyMatch struct {
	Company         Company `json:"company"`
	Eligible        bool    `json:"eligible"`
	MatchPercentage int     `json:"match_percentage"`
}
