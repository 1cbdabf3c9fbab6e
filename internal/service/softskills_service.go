package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

const (
	// Categories scoring under this percentage get a remedial recommendation.
	softSkillsWeakThreshold = 70
	// Under this the recommendation is flagged high priority.
	softSkillsCriticalThreshold = 50
)

// SoftSkillsService grades soft-skills scenario submissions with a
// per-category breakdown.
type SoftSkillsService struct {
	bank *store.SoftSkillsBank
	log  zerolog.Logger
}

// NewSoftSkillsService creates a new SoftSkillsService.
func NewSoftSkillsService(bank *store.SoftSkillsBank, log zerolog.Logger) *SoftSkillsService {
	return &SoftSkillsService{
		bank: bank,
		log:  log.With().Str("component", "softskills_service").Logger(),
	}
}

// Grade scores a mapping of question id to selected option index. Unknown
// ids are skipped like in aptitude grading. Feedback entries are ordered by
// question id so repeated grading of the same submission is identical.
func (s *SoftSkillsService) Grade(answers map[string]int) model.SoftSkillsResult {
	qids := make([]string, 0, len(answers))
	for qid := range answers {
		qids = append(qids, qid)
	}
	sort.Strings(qids)

	correct := 0
	total := 0
	perCategory := make(map[string]*categoryTally)
	feedback := make([]model.SoftSkillsFeedbackEntry, 0, len(qids))

	for _, qid := range qids {
		q, ok := s.bank.Lookup(qid)
		if !ok {
			s.log.Debug().Str("question_id", qid).Msg("Unknown question id in submission, skipping")
			continue
		}
		selected := answers[qid]
		isCorrect := q.CorrectAnswer == selected

		total++
		if isCorrect {
			correct++
		}

		tally := perCategory[q.Category]
		if tally == nil {
			tally = &categoryTally{}
			perCategory[q.Category] = tally
		}
		tally.total++
		if isCorrect {
			tally.correct++
		}

		feedback = append(feedback, model.SoftSkillsFeedbackEntry{
			Question:      q.Question,
			Category:      q.Category,
			IsCorrect:     isCorrect,
			UserAnswer:    selected,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	score := 0
	if total > 0 {
		score = roundPercent(correct, total)
	}

	categoryScores := make(map[string]int, len(perCategory))
	for category, tally := range perCategory {
		categoryScores[category] = roundPercent(tally.correct, tally.total)
	}

	return model.SoftSkillsResult{
		Score:           score,
		CorrectAnswers:  correct,
		TotalQuestions:  total,
		CategoryScores:  categoryScores,
		Feedback:        feedback,
		Recommendations: buildRecommendations(categoryScores),
	}
}

type categoryTally struct {
	correct int
	total   int
}

// buildRecommendations emits one remedial suggestion per weak category, in
// category order.
func buildRecommendations(categoryScores map[string]int) []model.Recommendation {
	categories := make([]string, 0, len(categoryScores))
	for category := range categoryScores {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	recs := make([]model.Recommendation, 0)
	for _, category := range categories {
		pct := categoryScores[category]
		if pct >= softSkillsWeakThreshold {
			continue
		}
		priority := "medium"
		if pct < softSkillsCriticalThreshold {
			priority = "high"
		}
		recs = append(recs, model.Recommendation{
			Type:  "Soft Skills",
			Title: fmt.Sprintf("Improve %s Skills", category),
			Description: fmt.Sprintf(
				"Your performance in %s was below 70%%. Consider practicing more in this area through workshops, online courses, or mentorship.",
				category),
			Priority: priority,
		})
	}
	return recs
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
