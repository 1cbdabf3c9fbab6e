package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

func newScenarioBank(t *testing.T) *store.SoftSkillsBank {
	t.Helper()
	questions := []model.SoftSkillsQuestion{
		{ID: "sa1", Question: "A", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: 0, Category: "Communication"},
		{ID: "sa2", Question: "B", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: 1, Category: "Communication"},
		{ID: "sb1", Question: "C", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: 2, Category: "Leadership"},
		{ID: "sb2", Question: "D", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: 3, Category: "Leadership"},
	}
	return store.NewSoftSkillsBank(generator.NewRand(1), questions)
}

func TestSoftSkillsGrade_Empty(t *testing.T) {
	svc := NewSoftSkillsService(newScenarioBank(t), zerolog.Nop())

	result := svc.Grade(map[string]int{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Empty(t, result.CategoryScores)
	assert.Empty(t, result.Feedback)
	assert.Empty(t, result.Recommendations)
}

func TestSoftSkillsGrade_CategoryBreakdown(t *testing.T) {
	svc := NewSoftSkillsService(newScenarioBank(t), zerolog.Nop())

	// Communication: 1/2 correct, Leadership: 0/2 correct.
	result := svc.Grade(map[string]int{
		"sa1": 0, // correct
		"sa2": 0, // wrong
		"sb1": 0, // wrong
		"sb2": 0, // wrong
	})

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, map[string]int{
		"Communication": 50,
		"Leadership":    0,
	}, result.CategoryScores)

	// Feedback is ordered by question id.
	require.Len(t, result.Feedback, 4)
	assert.Equal(t, "A", result.Feedback[0].Question)
	assert.True(t, result.Feedback[0].IsCorrect)
	assert.Equal(t, "D", result.Feedback[3].Question)
	assert.False(t, result.Feedback[3].IsCorrect)
}

func TestSoftSkillsGrade_Recommendations(t *testing.T) {
	svc := NewSoftSkillsService(newScenarioBank(t), zerolog.Nop())

	// Communication at 50% gets a medium-priority nudge, Leadership at 0%
	// a high-priority one; category order is alphabetical.
	result := svc.Grade(map[string]int{
		"sa1": 0, "sa2": 0,
		"sb1": 0, "sb2": 0,
	})

	require.Len(t, result.Recommendations, 2)

	comm := result.Recommendations[0]
	assert.Equal(t, "Soft Skills", comm.Type)
	assert.Equal(t, "Improve Communication Skills", comm.Title)
	assert.Equal(t, "medium", comm.Priority)
	assert.Contains(t, comm.Description, "Communication")

	lead := result.Recommendations[1]
	assert.Equal(t, "Improve Leadership Skills", lead.Title)
	assert.Equal(t, "high", lead.Priority)
}

func TestSoftSkillsGrade_NoRecommendationsAboveThreshold(t *testing.T) {
	svc := NewSoftSkillsService(newScenarioBank(t), zerolog.Nop())

	result := svc.Grade(map[string]int{
		"sa1": 0, "sa2": 1,
		"sb1": 2, "sb2": 3,
	})

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Recommendations)
}

func TestSoftSkillsGrade_UnknownIDsExcluded(t *testing.T) {
	svc := NewSoftSkillsService(newScenarioBank(t), zerolog.Nop())

	result := svc.Grade(map[string]int{
		"sa1":     0,
		"unknown": 2,
	})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 1, result.TotalQuestions)
	assert.Len(t, result.Feedback, 1)
}

func TestSoftSkillsGrade_RoundsPercentages(t *testing.T) {
	svc := NewSoftSkillsService(store.NewSoftSkillsBank(generator.NewRand(1), []model.SoftSkillsQuestion{
		{ID: "t1", Question: "A", Options: []string{"w", "x"}, CorrectAnswer: 0, Category: "Teamwork"},
		{ID: "t2", Question: "B", Options: []string{"w", "x"}, CorrectAnswer: 0, Category: "Teamwork"},
		{ID: "t3", Question: "C", Options: []string{"w", "x"}, CorrectAnswer: 0, Category: "Teamwork"},
	}), zerolog.Nop())

	result := svc.Grade(map[string]int{"t1": 0, "t2": 0, "t3": 1})

	// 2/3 rounds to 67, not 66.
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, 67, result.CategoryScores["Teamwork"])
}

func TestSoftSkillsPayloadStripsAnswer(t *testing.T) {
	q := model.SoftSkillsQuestion{
		ID:            "ss1",
		Question:      "Scenario",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 2,
		Category:      "Communication",
	}

	payload := q.Payload()

	assert.Equal(t, q.ID, payload.ID)
	assert.Equal(t, q.Options, payload.Options)
	assert.Equal(t, q.Category, payload.Category)
}
