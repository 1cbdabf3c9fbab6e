package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/model"
)

// fixedRand always draws the same value, pinning the mock score tier.
type fixedRand struct{ v int }

func (r fixedRand) IntN(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

// fakeGenerator returns a canned reply or error.
type fakeGenerator struct {
	reply string
	err   error
}

func (g fakeGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	return g.reply, g.err
}

func TestAnalyze_MockTiers(t *testing.T) {
	tests := []struct {
		name  string
		draw  int
		score int
		first string
	}{
		{"remedial", 5, 45, "Add more technical projects to showcase your skills"},
		{"moderate", 30, 70, "Good structure, but add more specific achievements"},
		{"strong", 45, 85, "Excellent resume structure and content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewResumeService(fixedRand{v: tt.draw}, nil, zerolog.Nop())

			analysis := svc.Analyze(context.Background(), "")

			assert.Equal(t, model.AnalyzerMock, analysis.Source)
			assert.Equal(t, tt.score, analysis.Score)
			require.NotEmpty(t, analysis.Feedback)
			assert.Equal(t, tt.first, analysis.Feedback[0])
			assert.NotEmpty(t, analysis.AnalysisDate)
		})
	}
}

func TestAnalyze_MockScoreRange(t *testing.T) {
	svc := NewResumeService(fixedRand{v: 1 << 30}, nil, zerolog.Nop())

	// Even the maximal draw stays within [40, 90].
	analysis := svc.Analyze(context.Background(), "")
	assert.Equal(t, 90, analysis.Score)
}

const sampleResume = `Rahul Sharma
rahul.sharma@college.edu | +91 987-654-3210 | linkedin.com/in/rahulsharma | github.com/rahulsharma

Summary
Final-year B.Tech student in computer science with a focus on backend systems, looking to apply
data engineering skills in a product company. Built and shipped three production projects.

Education
B.Tech Computer Science, National Institute of Technology, 2022 - 2026, CGPA 8.4

Experience
Software Engineering Intern, TechCorp Pvt Ltd, 6 months
Developed a reporting pipeline in Python and SQL that reduced report latency by 40%.
Led a team of 3 interns and improved test coverage.

Skills
Technical Skills: Python, Java, JavaScript, React, Node, SQL, AWS, Docker, Git
Soft skills: leadership, communication, teamwork, problem solving

Projects
Project: placement readiness dashboard (React, Node)
Project: exam grading service (Python, SQL)
Project: log shipping agent (Docker, AWS)

Certifications
AWS Certified Cloud Practitioner course, winner of college hackathon award
`

func TestAnalyze_HeuristicRichResume(t *testing.T) {
	svc := NewResumeService(fixedRand{}, nil, zerolog.Nop())

	analysis := svc.Analyze(context.Background(), sampleResume)

	assert.Equal(t, model.AnalyzerHeuristic, analysis.Source)
	assert.GreaterOrEqual(t, analysis.Score, 85)
	assert.LessOrEqual(t, analysis.Score, 100)

	assert.Contains(t, analysis.Strengths, "Professional email address included")
	assert.Contains(t, analysis.Strengths, "Strong action verbs used")
	assert.Contains(t, analysis.Strengths, "Multiple projects showcased")
	assert.Contains(t, analysis.SkillsFound, "python")
	assert.Contains(t, analysis.SkillsFound, "docker")

	require.NotEmpty(t, analysis.Recommendations)
	assert.Equal(t, "EXCELLENT: Resume is well-optimized for ATS systems", analysis.Recommendations[0])
}

func TestAnalyze_HeuristicWeakResume(t *testing.T) {
	svc := NewResumeService(fixedRand{}, nil, zerolog.Nop())

	analysis := svc.Analyze(context.Background(), "I am a student looking for a job.")

	assert.Equal(t, model.AnalyzerHeuristic, analysis.Source)
	assert.Less(t, analysis.Score, 50)

	require.NotEmpty(t, analysis.Recommendations)
	assert.Equal(t, "CRITICAL: Resume needs major improvements for ATS systems", analysis.Recommendations[0])
	assert.Contains(t, analysis.Improvements, "Resume appears too short (aim for 400-700 words)")
}

func TestAnalyze_HeuristicGenericAdviceAppended(t *testing.T) {
	svc := NewResumeService(fixedRand{}, nil, zerolog.Nop())

	analysis := svc.Analyze(context.Background(), sampleResume)

	n := len(analysis.Recommendations)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, "Use standard section headings (Experience, Education, Skills)", analysis.Recommendations[n-3])
	assert.Equal(t, "Save as PDF to preserve formatting", analysis.Recommendations[n-2])
	assert.Equal(t, "Avoid graphics, tables, and columns for ATS compatibility", analysis.Recommendations[n-1])
}

func TestAnalyze_GeminiSuccess(t *testing.T) {
	gen := fakeGenerator{reply: `{
		"score": 82,
		"strengths": ["clear structure"],
		"improvements": ["add metrics"],
		"recommendations": ["quantify outcomes"],
		"skills_found": ["python", "sql"]
	}`}
	svc := NewResumeService(fixedRand{}, gen, zerolog.Nop())

	analysis := svc.Analyze(context.Background(), sampleResume)

	assert.Equal(t, model.AnalyzerGemini, analysis.Source)
	assert.Equal(t, 82, analysis.Score)
	assert.Equal(t, []string{"clear structure"}, analysis.Strengths)
	assert.Equal(t, []string{"python", "sql"}, analysis.SkillsFound)
}

func TestAnalyze_GeminiMarkdownFencedReply(t *testing.T) {
	gen := fakeGenerator{reply: "```json\n{\"score\": 64, \"strengths\": [], \"improvements\": [], \"recommendations\": [], \"skills_found\": []}\n```"}
	svc := NewResumeService(fixedRand{}, gen, zerolog.Nop())

	analysis := svc.Analyze(context.Background(), sampleResume)

	assert.Equal(t, model.AnalyzerGemini, analysis.Source)
	assert.Equal(t, 64, analysis.Score)
}

func TestAnalyze_GeminiScoreClamped(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{"above range", `{"score": 130}`, 100},
		{"below range", `{"score": -5}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewResumeService(fixedRand{}, fakeGenerator{reply: tt.reply}, zerolog.Nop())
			analysis := svc.Analyze(context.Background(), sampleResume)
			assert.Equal(t, tt.want, analysis.Score)
		})
	}
}

func TestAnalyze_GeminiErrorFallsBackToHeuristic(t *testing.T) {
	tests := []struct {
		name string
		gen  ContentGenerator
	}{
		{"transport error", fakeGenerator{err: errors.New("rpc failed")}},
		{"no JSON in reply", fakeGenerator{reply: "sorry, I cannot help with that"}},
		{"malformed JSON", fakeGenerator{reply: `{"score": not a number}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewResumeService(fixedRand{}, tt.gen, zerolog.Nop())

			analysis := svc.Analyze(context.Background(), sampleResume)

			assert.Equal(t, model.AnalyzerHeuristic, analysis.Source)
			assert.Positive(t, analysis.Score)
		})
	}
}

func TestAnalyze_EmptyTextSkipsGemini(t *testing.T) {
	gen := fakeGenerator{reply: `{"score": 99}`}
	svc := NewResumeService(fixedRand{v: 10}, gen, zerolog.Nop())

	analysis := svc.Analyze(context.Background(), "")

	assert.Equal(t, model.AnalyzerMock, analysis.Source)
}

func TestAnalyze_ConcurrentMockAnalyses(t *testing.T) {
	// The mock path shares its randomness source with the question banks;
	// concurrent requests must not corrupt it.
	svc := NewResumeService(generator.NewRand(3), nil, zerolog.Nop())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				analysis := svc.Analyze(context.Background(), "")
				if analysis.Score < 40 || analysis.Score > 90 {
					t.Errorf("mock score %d out of [40, 90]", analysis.Score)
				}
			}
		}()
	}
	wg.Wait()
}

func TestUniqueLower(t *testing.T) {
	got := uniqueLower([]string{"Python", "SQL", "python", "sql", "AWS"})
	assert.Equal(t, []string{"python", "sql", "aws"}, got)
}
