package service

import (
	"errors"
	"math"

	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

// ErrEmptyCohort is returned when analytics are requested over zero students.
var ErrEmptyCohort = errors.New("cohort is empty")

const (
	weakStudentThreshold   = 60
	strongStudentThreshold = 75
	weakAreaThreshold      = 65
)

// weakAreaLabels maps an averaged dimension to its remediation label; the
// suggested seminar is the label plus " Workshop", in the same order.
var weakAreaDimensions = []struct {
	label string
	score func(model.Student) int
}{
	{"Resume Writing", func(s model.Student) int { return s.ResumeScore }},
	{"Aptitude Skills", func(s model.Student) int { return s.AptitudeScore }},
	{"Soft Skills", func(s model.Student) int { return s.SoftSkillsScore }},
}

// AnalyticsService aggregates the student collection into cohort statistics.
type AnalyticsService struct {
	students *store.StudentStore
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(students *store.StudentStore) *AnalyticsService {
	return &AnalyticsService{students: students}
}

// Summarize computes the cohort summary over all stored profiles. It returns
// ErrEmptyCohort rather than dividing by a zero student count.
func (s *AnalyticsService) Summarize() (model.CohortSummary, error) {
	return SummarizeCohort(s.students.List())
}

// SummarizeCohort computes means of the overall score and the three coached
// dimensions, counts weak (<60) and strong (>=75) students, and derives one
// seminar suggestion per dimension whose mean falls under 65.
func SummarizeCohort(students []model.Student) (model.CohortSummary, error) {
	count := len(students)
	if count == 0 {
		return model.CohortSummary{}, ErrEmptyCohort
	}

	overallSum := 0
	weak := 0
	strong := 0
	for _, st := range students {
		overallSum += st.OverallScore
		if st.OverallScore < weakStudentThreshold {
			weak++
		}
		if st.OverallScore >= strongStudentThreshold {
			strong++
		}
	}

	weakAreas := make([]string, 0, len(weakAreaDimensions))
	seminars := make([]string, 0, len(weakAreaDimensions))
	for _, dim := range weakAreaDimensions {
		sum := 0
		for _, st := range students {
			sum += dim.score(st)
		}
		if float64(sum)/float64(count) < weakAreaThreshold {
			weakAreas = append(weakAreas, dim.label)
			seminars = append(seminars, dim.label+" Workshop")
		}
	}

	return model.CohortSummary{
		TotalStudents:       count,
		AverageScore:        math.Round(float64(overallSum)/float64(count)*10) / 10,
		WeakStudentsCount:   weak,
		StrongStudentsCount: strong,
		WeakAreas:           weakAreas,
		SuggestedSeminars:   seminars,
	}, nil
}
