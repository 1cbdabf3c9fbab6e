package model

// Student represents one synthetic placement-readiness profile. Profiles are
// generated once at startup and never mutated afterwards; re-grading a test
// produces a fresh result, not a profile edit.
type Student struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	OverallScore    int             `json:"overall_score"`
	ResumeScore     int             `json:"resume_score"`
	AptitudeScore   int             `json:"aptitude_score"`
	SoftSkillsScore int             `json:"soft_skills_score"`
	InterviewScore  int             `json:"interview_score"`
	ProgressData    []ProgressPoint `json:"progress_data"`
}

// ProgressPoint is one weekly snapshot in a student's progress history,
// ordered oldest to newest. Every metric is floored at 30.
type ProgressPoint struct {
	Week       string `json:"week"`
	Date       string `json:"date"`
	Overall    int    `json:"overall"`
	Resume     int    `json:"resume"`
	Aptitude   int    `json:"aptitude"`
	SoftSkills int    `json:"soft_skills"`
}
