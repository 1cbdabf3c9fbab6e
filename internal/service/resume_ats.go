package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/placeready/placeready-backend/internal/model"
)

// Keyword ATS scoring rubric, 100 points total:
// contact 15, summary 10, education 15, experience 25, skills 20,
// projects 10, certifications 5.
var (
	reEmail     = regexp.MustCompile(`@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhone     = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reLinkedIn  = regexp.MustCompile(`(?i)linkedin|linked-in`)
	reGitHub    = regexp.MustCompile(`(?i)github|git hub`)
	reLocation  = regexp.MustCompile(`(?i)\b(city|state|location|address)\b|,\s*[A-Z]{2}\b`)
	reSummary   = regexp.MustCompile(`(?i)(summary|profile|about|objective)`)
	reSummaryLn = regexp.MustCompile(`(?is)(summary|profile|about|objective).{50,300}`)

	reDegree     = regexp.MustCompile(`(?i)(bachelor|master|phd|b\.?tech|b\.?sc|m\.?tech|m\.?sc|mba|diploma)`)
	reUniversity = regexp.MustCompile(`(?i)(university|college|institute|school)`)
	reGradYear   = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	reCGPA       = regexp.MustCompile(`(?i)(cgpa|gpa|percentage|%|grade)`)

	reExperience = regexp.MustCompile(`(?i)(experience|work|employment|internship)`)
	reCompany    = regexp.MustCompile(`(?i)(company|organization|firm|startup)|\b[A-Z][a-z]+\s+(Inc|Ltd|Corp|LLC|Pvt)\b`)
	reDuration   = regexp.MustCompile(`(?i)(month|year|present|current|\d+\s*-\s*\d+)`)
	reActionVerb = regexp.MustCompile(`(?i)(developed|created|managed|led|designed|implemented|built|improved|achieved|delivered)`)
	reQuantified = regexp.MustCompile(`(?i)(\d+%|\d+x|saved|increased|reduced|improved by)`)

	reSkillsSection = regexp.MustCompile(`(?i)(skills|technical skills|competencies|expertise)`)
	reTechSkill     = regexp.MustCompile(`(?i)\b(python|java|javascript|react|node|sql|aws|docker|git|html|css|c\+\+|machine learning|ai|data science|angular|vue|kubernetes|mongodb|postgresql)\b`)
	reSoftSkill     = regexp.MustCompile(`(?i)\b(leadership|communication|teamwork|problem solving|analytical|creative|time management)\b`)

	reProject        = regexp.MustCompile(`(?i)project`)
	reCertifications = regexp.MustCompile(`(?i)(certification|certified|certificate|course)`)
	reAchievements   = regexp.MustCompile(`(?i)(award|achievement|recognition|winner|rank|prize)`)
)

// analyzeATS scores resume text against the keyword rubric and collects the
// strengths, improvements, and recommendations the match evidence supports.
func analyzeATS(text string) model.ResumeAnalysis {
	total := 0
	var strengths, improvements, recommendations []string

	// Contact information (15)
	if reEmail.MatchString(text) {
		total += 5
		strengths = append(strengths, "Professional email address included")
	} else {
		improvements = append(improvements, "Add a professional email address")
	}
	if rePhone.MatchString(text) {
		total += 4
		strengths = append(strengths, "Phone number provided")
	} else {
		improvements = append(improvements, "Include phone number for contact")
	}
	if reLinkedIn.MatchString(text) {
		total += 3
		strengths = append(strengths, "LinkedIn profile linked")
	} else {
		recommendations = append(recommendations, "Add LinkedIn profile URL")
	}
	if reGitHub.MatchString(text) {
		total += 2
		strengths = append(strengths, "GitHub profile included")
	} else {
		recommendations = append(recommendations, "Include GitHub profile (for tech roles)")
	}
	if reLocation.MatchString(text) {
		total++
	}

	// Professional summary (10)
	switch {
	case reSummary.MatchString(text) && len(reSummaryLn.FindString(text)) > 100:
		total += 10
		strengths = append(strengths, "Strong professional summary present")
	case reSummary.MatchString(text):
		total += 5
		improvements = append(improvements, "Expand professional summary (50-150 words)")
	default:
		improvements = append(improvements, "Add a professional summary/objective")
	}

	// Education (15)
	if reDegree.MatchString(text) {
		total += 6
		strengths = append(strengths, "Educational degree mentioned")
	} else {
		improvements = append(improvements, "Specify your degree/qualification")
	}
	if reUniversity.MatchString(text) {
		total += 4
		strengths = append(strengths, "Institution name included")
	} else {
		improvements = append(improvements, "Add university/institution name")
	}
	if reGradYear.MatchString(text) {
		total += 3
	}
	if reCGPA.MatchString(text) {
		total += 2
		strengths = append(strengths, "Academic performance included")
	} else {
		recommendations = append(recommendations, "Add CGPA/percentage if strong (>70%)")
	}

	// Work experience (25)
	if reExperience.MatchString(text) {
		total += 8
		strengths = append(strengths, "Work experience section present")
		if reCompany.MatchString(text) {
			total += 5
		}
		if reDuration.MatchString(text) {
			total += 4
		}
		if reActionVerb.MatchString(text) {
			total += 5
			strengths = append(strengths, "Strong action verbs used")
		} else {
			improvements = append(improvements, "Use action verbs (developed, led, managed, etc.)")
		}
		if reQuantified.MatchString(text) {
			total += 3
			strengths = append(strengths, "Quantifiable achievements mentioned")
		} else {
			improvements = append(improvements, "Add metrics and numbers to achievements")
		}
	} else {
		improvements = append(improvements, "Add work experience or internships")
		recommendations = append(recommendations, "Include projects if no work experience")
	}

	// Skills (20)
	if reSkillsSection.MatchString(text) {
		total += 5
		strengths = append(strengths, "Skills section included")
	} else {
		improvements = append(improvements, "Create a dedicated skills section")
	}
	techSkills := uniqueLower(reTechSkill.FindAllString(text, -1))
	switch {
	case len(techSkills) >= 8:
		total += 10
		strengths = append(strengths, fmt.Sprintf("Comprehensive technical skills (%d skills)", len(techSkills)))
	case len(techSkills) >= 4:
		total += 6
		recommendations = append(recommendations, fmt.Sprintf("Add more relevant technical skills (currently %d)", len(techSkills)))
	default:
		improvements = append(improvements, "List relevant technical skills (aim for 8-12)")
	}
	if len(uniqueLower(reSoftSkill.FindAllString(text, -1))) >= 3 {
		total += 5
		strengths = append(strengths, "Soft skills highlighted")
	} else {
		recommendations = append(recommendations, "Include key soft skills")
	}

	// Projects (10)
	projectCount := len(reProject.FindAllString(text, -1))
	switch {
	case projectCount >= 3:
		total += 10
		strengths = append(strengths, "Multiple projects showcased")
	case projectCount >= 1:
		total += 5
		improvements = append(improvements, "Add more projects (aim for 3-5)")
	default:
		improvements = append(improvements, "Include relevant projects with descriptions")
	}

	// Certifications and achievements (5)
	if reCertifications.MatchString(text) {
		total += 3
		strengths = append(strengths, "Certifications listed")
	} else {
		recommendations = append(recommendations, "Add relevant certifications")
	}
	if reAchievements.MatchString(text) {
		total += 2
		strengths = append(strengths, "Achievements highlighted")
	} else {
		recommendations = append(recommendations, "Include awards or achievements")
	}

	// Length advice, no points attached.
	wordCount := len(strings.Fields(text))
	if wordCount < 200 {
		improvements = append(improvements, "Resume appears too short (aim for 400-700 words)")
	} else if wordCount > 1000 {
		improvements = append(improvements, "Resume may be too long (keep under 2 pages)")
	}

	switch {
	case total < 50:
		recommendations = append([]string{"CRITICAL: Resume needs major improvements for ATS systems"}, recommendations...)
	case total < 70:
		recommendations = append([]string{"MODERATE: Add more details and keywords for better ATS score"}, recommendations...)
	case total >= 85:
		recommendations = append([]string{"EXCELLENT: Resume is well-optimized for ATS systems"}, recommendations...)
	}

	recommendations = append(recommendations,
		"Use standard section headings (Experience, Education, Skills)",
		"Save as PDF to preserve formatting",
		"Avoid graphics, tables, and columns for ATS compatibility",
	)

	if total > 100 {
		total = 100
	}

	return model.ResumeAnalysis{
		Score:           total,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommendations,
		SkillsFound:     techSkills,
		Source:          model.AnalyzerHeuristic,
		AnalysisDate:    time.Now().Format(time.RFC3339),
	}
}

// uniqueLower deduplicates matches case-insensitively, preserving first-seen
// order.
func uniqueLower(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
