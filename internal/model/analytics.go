package model

// CohortSummary aggregates the whole student collection into the numbers the
// placement-cell dashboard shows. WeakAreas and SuggestedSeminars are
// parallel lists: one seminar per weak area, in the same order.
type CohortSummary struct {
	TotalStudents       int      `json:"total_students"`
	AverageScore        float64  `json:"average_score"`
	WeakStudentsCount   int      `json:"weak_students_count"`
	StrongStudentsCount int      `json:"strong_students_count"`
	WeakAreas           []string `json:"weak_areas"`
	SuggestedSeminars   []string `json:"suggested_seminars"`
}
