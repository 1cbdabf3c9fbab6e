package model

// SoftSkillsQuestion is a scenario question from the soft-skills bank.
type SoftSkillsQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Category      string   `json:"category"`
}

// SoftSkillsQuestionPayload is the client-facing shape of a soft-skills
// question. Unlike the aptitude payload, the correct answer is stripped.
type SoftSkillsQuestionPayload struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

// Payload returns the question without its correct-answer index.
func (q SoftSkillsQuestion) Payload() SoftSkillsQuestionPayload {
	return SoftSkillsQuestionPayload{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
		Category: q.Category,
	}
}

// SoftSkillsFeedbackEntry explains the grading of a single answered question.
type SoftSkillsFeedbackEntry struct {
	Question      string `json:"question"`
	Category      string `json:"category"`
	IsCorrect     bool   `json:"is_correct"`
	UserAnswer    int    `json:"user_answer"`
	CorrectAnswer int    `json:"correct_answer"`
}

// Recommendation is a remedial suggestion derived from weak category
// performance.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// SoftSkillsResult is the outcome of grading a soft-skills submission,
// including a per-category percentage breakdown.
type SoftSkillsResult struct {
	Score           int                       `json:"score"`
	CorrectAnswers  int                       `json:"correct_answers"`
	TotalQuestions  int                       `json:"total_questions"`
	CategoryScores  map[string]int            `json:"category_scores"`
	Feedback        []SoftSkillsFeedbackEntry `json:"feedback"`
	Recommendations []Recommendation          `json:"recommendations"`
}
