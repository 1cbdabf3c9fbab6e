package store

import (
	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/model"
)

// QuestionBank holds the immutable aptitude question set and samples subsets
// for test sessions. The question set is never written after construction,
// and the randomness source serializes its own draws, so sampling is safe
// for concurrent requests.
type QuestionBank struct {
	rng       generator.Rand
	questions []model.Question
	byID      map[string]model.Question
}

// NewQuestionBank indexes the given questions for lookup and sampling.
func NewQuestionBank(rng generator.Rand, questions []model.Question) *QuestionBank {
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &QuestionBank{rng: rng, questions: questions, byID: byID}
}

// Lookup returns the question with the given id.
func (b *QuestionBank) Lookup(id string) (model.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Sample returns min(n, bank size) questions drawn uniformly at random
// without replacement.
func (b *QuestionBank) Sample(n int) []model.Question {
	return sampleWithoutReplacement(b.rng, b.questions, n)
}

// Len reports the bank size.
func (b *QuestionBank) Len() int {
	return len(b.questions)
}

// sampleWithoutReplacement draws n items via a partial Fisher-Yates shuffle
// over a scratch copy. Order of the result is not significant.
func sampleWithoutReplacement[T any](rng generator.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []T{}
	}
	scratch := make([]T, len(items))
	copy(scratch, items)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:n]
}
