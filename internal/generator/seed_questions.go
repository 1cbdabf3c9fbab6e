package generator

import "github.com/placeready/placeready-backend/internal/model"

// SeedAptitudeQuestions returns the built-in aptitude question set, spanning
// all three categories.
func SeedAptitudeQuestions() []model.Question {
	return []model.Question{
		{
			ID:            "q1",
			Question:      "If a train travels 120 km in 2 hours, what is its average speed?",
			Options:       []string{"50 km/h", "60 km/h", "70 km/h", "80 km/h"},
			CorrectAnswer: 1,
			Category:      model.CategoryQuantitative,
		},
		{
			ID:            "q2",
			Question:      "Complete the series: 2, 6, 12, 20, 30, ?",
			Options:       []string{"40", "42", "44", "46"},
			CorrectAnswer: 1,
			Category:      model.CategoryLogical,
		},
		{
			ID:            "q3",
			Question:      "Choose the word most similar to 'Abundant':",
			Options:       []string{"Scarce", "Plentiful", "Limited", "Rare"},
			CorrectAnswer: 1,
			Category:      model.CategoryVerbal,
		},
		{
			ID:            "q4",
			Question:      "If 3x + 7 = 22, what is the value of x?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 2,
			Category:      model.CategoryQuantitative,
		},
		{
			ID:            "q5",
			Question:      "Which number comes next: 1, 4, 9, 16, 25, ?",
			Options:       []string{"30", "32", "36", "40"},
			CorrectAnswer: 2,
			Category:      model.CategoryLogical,
		},
		{
			ID:            "q6",
			Question:      "Antonym of 'Optimistic':",
			Options:       []string{"Hopeful", "Positive", "Pessimistic", "Confident"},
			CorrectAnswer: 2,
			Category:      model.CategoryVerbal,
		},
		{
			ID:            "q7",
			Question:      "A rectangle has length 8m and width 6m. What is its area?",
			Options:       []string{"42 sq m", "48 sq m", "52 sq m", "56 sq m"},
			CorrectAnswer: 1,
			Category:      model.CategoryQuantitative,
		},
		{
			ID:            "q8",
			Question:      "If all roses are flowers and some flowers are red, then:",
			Options:       []string{"All roses are red", "Some roses are red", "No roses are red", "Cannot be determined"},
			CorrectAnswer: 3,
			Category:      model.CategoryLogical,
		},
		{
			ID:            "q9",
			Question:      "Choose the correctly spelled word:",
			Options:       []string{"Accomodate", "Accommodate", "Acommodate", "Acomodate"},
			CorrectAnswer: 1,
			Category:      model.CategoryVerbal,
		},
		{
			ID:            "q10",
			Question:      "What is 15% of 200?",
			Options:       []string{"25", "30", "35", "40"},
			CorrectAnswer: 1,
			Category:      model.CategoryQuantitative,
		},
	}
}
