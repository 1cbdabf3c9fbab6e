package generator

import "github.com/placeready/placeready-backend/internal/model"

// SeedCompanies returns the built-in recruiting companies and their bars.
func SeedCompanies() []model.Company {
	return []model.Company{
		{
			ID:   "c1",
			Name: "TechCorp Solutions",
			Requirements: model.Requirements{
				MinOverallScore:  70,
				MinAptitudeScore: 65,
				RequiredSkills:   []string{"Python", "SQL", "Problem Solving"},
				MinCGPA:          7.0,
			},
		},
		{
			ID:   "c2",
			Name: "DataFlow Analytics",
			Requirements: model.Requirements{
				MinOverallScore:  75,
				MinAptitudeScore: 70,
				RequiredSkills:   []string{"Data Analysis", "Statistics", "Python"},
				MinCGPA:          7.5,
			},
		},
		{
			ID:   "c3",
			Name: "WebDev Innovations",
			Requirements: model.Requirements{
				MinOverallScore:  65,
				MinAptitudeScore: 60,
				RequiredSkills:   []string{"JavaScript", "React", "Node.js"},
				MinCGPA:          6.5,
			},
		},
	}
}
