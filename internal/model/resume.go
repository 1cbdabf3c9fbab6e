package model

// AnalyzerSource identifies which analysis path produced a ResumeAnalysis.
type AnalyzerSource string

const (
	AnalyzerMock      AnalyzerSource = "mock"
	AnalyzerHeuristic AnalyzerSource = "heuristic"
	AnalyzerGemini    AnalyzerSource = "gemini"
)

// AnalyzeResumeRequest carries optional resume text. An empty body selects
// the randomized mock analyzer.
type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text" binding:"omitempty,max=50000"`
}

// ResumeAnalysis is the outcome of analyzing one resume. The mock path fills
// only Score and Feedback; the heuristic and Gemini paths fill the
// structured lists instead.
type ResumeAnalysis struct {
	Score           int            `json:"score"`
	Feedback        []string       `json:"feedback,omitempty"`
	Strengths       []string       `json:"strengths,omitempty"`
	Improvements    []string       `json:"improvements,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	SkillsFound     []string       `json:"skills_found,omitempty"`
	Source          AnalyzerSource `json:"source"`
	AnalysisDate    string         `json:"analysis_date"`
}
