package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/model"
	"github.com/placeready/placeready-backend/internal/store"
)

func newTestMatchService(t *testing.T) *MatchService {
	t.Helper()
	companies, err := store.NewCompanyStore(generator.SeedCompanies())
	require.NoError(t, err)
	return NewMatchService(companies)
}

func TestMatch_Eligibility(t *testing.T) {
	svc := newTestMatchService(t)
	techCorp := generator.SeedCompanies()[0] // bars: overall 70, aptitude 65

	tests := []struct {
		name     string
		overall  int
		aptitude int
		eligible bool
	}{
		{"both bars met exactly", 70, 65, true},
		{"both bars exceeded", 90, 80, true},
		{"overall one short", 69, 65, false},
		{"aptitude one short", 70, 64, false},
		{"both short", 40, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := &model.Student{OverallScore: tt.overall, AptitudeScore: tt.aptitude}
			match := svc.Match(student, techCorp)
			assert.Equal(t, tt.eligible, match.Eligible)
		})
	}
}

func TestMatch_Percentage(t *testing.T) {
	svc := newTestMatchService(t)
	techCorp := generator.SeedCompanies()[0] // overall bar 70

	tests := []struct {
		name    string
		overall int
		want    int
	}{
		{"exactly at bar", 70, 100},
		{"far above bar is capped", 100, 100},
		{"half the bar", 35, 50},
		{"truncated not rounded", 69, 98}, // 6900/70 = 98.57
		{"zero overall", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := &model.Student{OverallScore: tt.overall, AptitudeScore: 100}
			match := svc.Match(student, techCorp)
			assert.Equal(t, tt.want, match.MatchPercentage)
		})
	}
}

func TestMatch_IneligibleStillGetsPercentage(t *testing.T) {
	svc := newTestMatchService(t)
	techCorp := generator.SeedCompanies()[0]

	student := &model.Student{OverallScore: 80, AptitudeScore: 10}
	match := svc.Match(student, techCorp)

	assert.False(t, match.Eligible)
	assert.Equal(t, 100, match.MatchPercentage)
}

func TestMatchAll_LoadOrder(t *testing.T) {
	svc := newTestMatchService(t)

	student := &model.Student{OverallScore: 68, AptitudeScore: 62}
	matches := svc.MatchAll(student)

	require.Len(t, matches, 3)
	assert.Equal(t, "c1", matches[0].Company.ID)
	assert.Equal(t, "c2", matches[1].Company.ID)
	assert.Equal(t, "c3", matches[2].Company.ID)

	// Only WebDev (65/60) clears both bars for this student.
	assert.False(t, matches[0].Eligible)
	assert.False(t, matches[1].Eligible)
	assert.True(t, matches[2].Eligible)
}
