package store

import (
	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/model"
)

// SoftSkillsBank holds the immutable soft-skills scenario questions.
// Like QuestionBank, it is safe for concurrent sampling.
type SoftSkillsBank struct {
	rng       generator.Rand
	questions []model.SoftSkillsQuestion
	byID      map[string]model.SoftSkillsQuestion
}

// NewSoftSkillsBank indexes the given questions for lookup and sampling.
func NewSoftSkillsBank(rng generator.Rand, questions []model.SoftSkillsQuestion) *SoftSkillsBank {
	byID := make(map[string]model.SoftSkillsQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &SoftSkillsBank{rng: rng, questions: questions, byID: byID}
}

// Lookup returns the question with the given id.
func (b *SoftSkillsBank) Lookup(id string) (model.SoftSkillsQuestion, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Sample returns min(n, bank size) questions drawn uniformly at random
// without replacement.
func (b *SoftSkillsBank) Sample(n int) []model.SoftSkillsQuestion {
	return sampleWithoutReplacement(b.rng, b.questions, n)
}

// Len reports the bank size.
func (b *SoftSkillsBank) Len() int {
	return len(b.questions)
}
