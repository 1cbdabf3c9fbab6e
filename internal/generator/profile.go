package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/placeready/placeready-backend/internal/model"
)

const (
	scoreFloor = 30
	scoreCeil  = 100

	progressWeeks = 5
)

var firstNames = []string{
	"Arjun", "Priya", "Rahul", "Sneha", "Vikram",
	"Ananya", "Karthik", "Meera", "Rohan", "Divya",
}

var lastNames = []string{
	"Sharma", "Patel", "Kumar", "Singh", "Reddy",
	"Gupta", "Jain", "Agarwal", "Mehta", "Shah",
}

// GenerateStudents synthesizes count placement-readiness profiles. Each
// profile draws a base ability in [40,90] and derives the four component
// scores from it with independent noise, so components correlate the way a
// real cohort's would. Names may repeat across profiles; ids never do.
func GenerateStudents(r Rand, count int) []model.Student {
	students := make([]model.Student, 0, count)
	for i := 0; i < count; i++ {
		students = append(students, generateStudent(r))
	}
	return students
}

func generateStudent(r Rand) model.Student {
	first := firstNames[r.IntN(len(firstNames))]
	last := lastNames[r.IntN(len(lastNames))]

	// Soft skills get the widest noise band: it is the noisiest of the four
	// signals.
	base := between(r, 40, 90)
	resume := clamp(base+between(r, -15, 15), scoreFloor, scoreCeil)
	aptitude := clamp(base+between(r, -10, 10), scoreFloor, scoreCeil)
	softSkills := clamp(base+between(r, -20, 20), scoreFloor, scoreCeil)
	interview := clamp(base+between(r, -15, 15), scoreFloor, scoreCeil)
	overall := (resume + aptitude + softSkills + interview) / 4

	progress := make([]model.ProgressPoint, 0, progressWeeks)
	now := time.Now()
	for week := 0; week < progressWeeks; week++ {
		date := now.AddDate(0, 0, -7*(progressWeeks-1-week))
		progress = append(progress, model.ProgressPoint{
			Week:       fmt.Sprintf("Week %d", week+1),
			Date:       date.Format("2006-01-02"),
			Overall:    floorAt(overall+between(r, -10, 10), scoreFloor),
			Resume:     floorAt(resume+between(r, -8, 8), scoreFloor),
			Aptitude:   floorAt(aptitude+between(r, -8, 8), scoreFloor),
			SoftSkills: floorAt(softSkills+between(r, -8, 8), scoreFloor),
		})
	}

	return model.Student{
		ID:              uuid.New().String(),
		Name:            first + " " + last,
		Email:           strings.ToLower(first) + "." + strings.ToLower(last) + "@college.edu",
		OverallScore:    overall,
		ResumeScore:     resume,
		AptitudeScore:   aptitude,
		SoftSkillsScore: softSkills,
		InterviewScore:  interview,
		ProgressData:    progress,
	}
}

func floorAt(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
