package service

import (
	"github.com/rs/zerolog"

	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

// Aptitude feedback tiers. The wording is part of the API contract.
const (
	aptitudeFeedbackStrong   = "Excellent performance! You have strong analytical skills."
	aptitudeFeedbackModerate = "Good job! Focus on practicing more logical reasoning questions."
	aptitudeFeedbackRemedial = "Need improvement. Consider taking additional practice tests."
)

// GradingService scores aptitude submissions against the question bank.
// Grading is deterministic: the same submission against the same bank always
// yields the same result.
type GradingService struct {
	bank *store.QuestionBank
	log  zerolog.Logger
}

// NewGradingService creates a new GradingService.
func NewGradingService(bank *store.QuestionBank, log zerolog.Logger) *GradingService {
	return &GradingService{
		bank: bank,
		log:  log.With().Str("component", "grading_service").Logger(),
	}
}

// Grade scores a mapping of question id to selected option index. Unknown
// question ids are silently skipped: they count toward neither correct nor
// total. Unanswered questions simply do not appear in the mapping and carry
// no penalty. An empty submission grades to zero without dividing.
func (s *GradingService) Grade(answers map[string]int) model.SubmissionResult {
	correct := 0
	total := 0
	for qid, selected := range answers {
		q, ok := s.bank.Lookup(qid)
		if !ok {
			s.log.Debug().Str("question_id", qid).Msg("Unknown question id in submission, skipping")
			continue
		}
		total++
		if q.CorrectAnswer == selected {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = correct * 100 / total
	}

	return model.SubmissionResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Feedback:       []string{aptitudeFeedback(score)},
	}
}

// aptitudeFeedback selects the tier message: >=80 strong, >=60 moderate,
// else remedial.
func aptitudeFeedback(score int) string {
	switch {
	case score >= 80:
		return aptitudeFeedbackStrong
	case score >= 60:
		return aptitudeFeedbackModerate
	default:
		return aptitudeFeedbackRemedial
	}
}
