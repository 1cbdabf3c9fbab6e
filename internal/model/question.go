package model

// QuestionCategory tags an aptitude question with its skill dimension.
type QuestionCategory string

const (
	CategoryQuantitative QuestionCategory = "quantitative"
	CategoryLogical      QuestionCategory = "logical"
	CategoryVerbal       QuestionCategory = "verbal"
)

// Question represents a single aptitude question. CorrectAnswer is the
// zero-based index into Options.
type Question struct {
	ID            string           `json:"id"`
	Question      string           `json:"question"`
	Options       []string         `json:"options"`
	CorrectAnswer int              `json:"correct_answer"`
	Category      QuestionCategory `json:"category"`
}

// SubmitAnswersRequest is the payload for submitting a test: a mapping of
// question id to the selected zero-based option index.
type SubmitAnswersRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

// SubmissionResult is the outcome of grading one answer submission.
// Score is floor(100 * correct / total), or 0 for an empty submission.
type SubmissionResult struct {
	Score          int      `json:"score"`
	CorrectAnswers int      `json:"correct_answers"`
	TotalQuestions int      `json:"total_questions"`
	Feedback       []string `json:"feedback"`
}
