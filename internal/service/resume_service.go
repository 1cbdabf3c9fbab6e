package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/model"
)

// ContentGenerator is the slice of the Gemini client the resume service
// needs. Tests substitute a canned implementation.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Mock-path feedback tiers: 3 lines under 60, 2 lines under 80, 2 lines at
// or above 80. Wording is part of the API contract.
var (
	resumeFeedbackRemedial = []string{
		"Add more technical projects to showcase your skills",
		"Improve formatting and structure",
		"Include quantifiable achievements",
	}
	resumeFeedbackModerate = []string{
		"Good structure, but add more specific achievements",
		"Consider adding relevant certifications",
	}
	resumeFeedbackStrong = []string{
		"Excellent resume structure and content",
		"Strong technical project descriptions",
	}
)

// ResumeService analyzes resumes through one of three paths: a randomized
// mock when no text is supplied, a keyword ATS heuristic, or Gemini when a
// generator is configured (falling back to the heuristic on any error).
type ResumeService struct {
	rng generator.Rand
	gen ContentGenerator
	log zerolog.Logger
}

// NewResumeService creates a new ResumeService. gen may be nil, disabling
// the Gemini path.
func NewResumeService(rng generator.Rand, gen ContentGenerator, log zerolog.Logger) *ResumeService {
	return &ResumeService{
		rng: rng,
		gen: gen,
		log: log.With().Str("component", "resume_service").Logger(),
	}
}

// Analyze scores the given resume text. An empty text selects the mock path:
// a uniform random score in [40,90] with tiered feedback. This randomness is
// deliberate placeholder behavior standing in for real parsing, not a bug.
func (s *ResumeService) Analyze(ctx context.Context, resumeText string) model.ResumeAnalysis {
	if resumeText == "" {
		return s.analyzeMock()
	}

	if s.gen != nil {
		analysis, err := s.analyzeWithGemini(ctx, resumeText)
		if err == nil {
			return analysis
		}
		s.log.Warn().Err(err).Msg("Gemini analysis failed, falling back to heuristic")
	}

	return analyzeATS(resumeText)
}

func (s *ResumeService) analyzeMock() model.ResumeAnalysis {
	score := generatorBetween(s.rng, 40, 90)

	var feedback []string
	switch {
	case score < 60:
		feedback = resumeFeedbackRemedial
	case score < 80:
		feedback = resumeFeedbackModerate
	default:
		feedback = resumeFeedbackStrong
	}

	return model.ResumeAnalysis{
		Score:        score,
		Feedback:     feedback,
		Source:       model.AnalyzerMock,
		AnalysisDate: time.Now().Format(time.RFC3339),
	}
}

// generatorBetween mirrors the generator package's inclusive draw. The rand
// source is shared with the question banks and serializes its own draws.
func generatorBetween(r generator.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

const geminiPromptTemplate = `You are an expert ATS (Applicant Tracking System) and recruitment specialist. Analyze this resume and provide a detailed assessment in JSON format.

Resume Content:
%s

Provide your analysis in this EXACT JSON format (no markdown, just raw JSON):
{
  "score": <number 0-100>,
  "strengths": [<array of 3-5 specific strengths found in the resume>],
  "improvements": [<array of 3-5 specific areas that need improvement>],
  "recommendations": [<array of 3-5 actionable recommendations>],
  "skills_found": [<array of technical skills detected>]
}

Scoring criteria:
- Contact information (15 points)
- Professional summary (10 points)
- Education (15 points)
- Work experience (25 points)
- Skills (20 points)
- Projects (10 points)
- Certifications (5 points)

Be specific, constructive, and professional in your feedback.`

type geminiAnalysis struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
	SkillsFound     []string `json:"skills_found"`
}

// jsonObjectRe extracts the first JSON object from a model reply, tolerating
// markdown fences around it.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

func (s *ResumeService) analyzeWithGemini(ctx context.Context, resumeText string) (model.ResumeAnalysis, error) {
	raw, err := s.gen.GenerateContent(ctx, fmt.Sprintf(geminiPromptTemplate, resumeText))
	if err != nil {
		return model.ResumeAnalysis{}, err
	}

	payload := jsonObjectRe.FindString(raw)
	if payload == "" {
		return model.ResumeAnalysis{}, errors.New("no JSON object in model response")
	}

	var parsed geminiAnalysis
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return model.ResumeAnalysis{}, fmt.Errorf("parse model response: %w", err)
	}

	if parsed.Score < 0 {
		parsed.Score = 0
	}
	if parsed.Score > 100 {
		parsed.Score = 100
	}

	s.log.Info().Int("score", parsed.Score).Msg("Gemini analysis succeeded")

	return model.ResumeAnalysis{
		Score:           parsed.Score,
		Strengths:       parsed.Strengths,
		Improvements:    parsed.Improvements,
		Recommendations: parsed.Recommendations,
		SkillsFound:     parsed.SkillsFound,
		Source:          model.AnalyzerGemini,
		AnalysisDate:    time.Now().Format(time.RFC3339),
	}, nil
}
