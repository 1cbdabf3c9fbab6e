package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeready/placeready-backend/internal/generator"
)

func TestQuestionBank_Lookup(t *testing.T) {
	bank := NewQuestionBank(generator.NewRand(1), generator.SeedAptitudeQuestions())

	q, ok := bank.Lookup("q1")
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)

	_, ok = bank.Lookup("q999")
	assert.False(t, ok)
}

func TestQuestionBank_Sample(t *testing.T) {
	bank := NewQuestionBank(generator.NewRand(1), generator.SeedAptitudeQuestions())

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{"subset", 5, 5},
		{"whole bank", 10, 10},
		{"more than bank", 25, 10},
		{"zero", 0, 0},
		{"negative", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := bank.Sample(tt.n)
			assert.Len(t, sample, tt.wantLen)

			seen := make(map[string]struct{}, len(sample))
			for _, q := range sample {
				_, dup := seen[q.ID]
				assert.False(t, dup, "question %s drawn twice", q.ID)
				seen[q.ID] = struct{}{}
			}
		})
	}
}

func TestQuestionBank_SampleLeavesBankIntact(t *testing.T) {
	questions := generator.SeedAptitudeQuestions()
	bank := NewQuestionBank(generator.NewRand(1), questions)

	for i := 0; i < 20; i++ {
		bank.Sample(7)
	}

	assert.Equal(t, len(questions), bank.Len())
	for i, q := range questions {
		assert.Equal(t, generator.SeedAptitudeQuestions()[i].ID, q.ID)
	}
}

func TestBanks_ConcurrentSamplingSharedSource(t *testing.T) {
	// Both banks draw from the same source, the way the server wires them.
	rng := generator.NewRand(1)
	questions := NewQuestionBank(rng, generator.SeedAptitudeQuestions())
	scenarios := NewSoftSkillsBank(rng, generator.SeedSoftSkillsQuestions())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if got := len(questions.Sample(10)); got != 10 {
					t.Errorf("aptitude sample returned %d questions, want 10", got)
				}
				if got := len(scenarios.Sample(20)); got != 20 {
					t.Errorf("soft-skills sample returned %d questions, want 20", got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestSoftSkillsBank_Sample(t *testing.T) {
	bank := NewSoftSkillsBank(generator.NewRand(1), generator.SeedSoftSkillsQuestions())

	assert.Equal(t, 21, bank.Len())
	assert.Len(t, bank.Sample(20), 20)
	assert.Len(t, bank.Sample(50), 21)

	q, ok := bank.Lookup("ss21")
	require.True(t, ok)
	assert.Equal(t, "ss21", q.ID)
}
