package generator

import "github.com/placeready/placeready-backend/internal/model"

// SeedSoftSkillsQuestions returns the built-in soft-skills scenario bank:
// three questions for each of seven behavioral categories.
func SeedSoftSkillsQuestions() []model.SoftSkillsQuestion {
	return []model.SoftSkillsQuestion{
		{
			ID:       "ss1",
			Question: "During a team meeting, you notice a colleague struggling to explain their idea. What's the best approach?",
			Options: []string{
				"Interrupt and explain it for them",
				"Let them continue without help",
				"Ask clarifying questions to help them express their thoughts",
				"Change the subject to avoid awkwardness",
			},
			CorrectAnswer: 2,
			Category:      "Communication",
		},
		{
			ID:       "ss2",
			Question: "You receive critical feedback via email. How should you respond?",
			Options: []string{
				"Immediately defend yourself",
				"Ignore it and move on",
				"Thank them for the feedback and ask for specific examples",
				"Forward it to your manager",
			},
			CorrectAnswer: 2,
			Category:      "Communication",
		},
		{
			ID:       "ss3",
			Question: "When presenting to senior management, which approach is most effective?",
			Options: []string{
				"Use technical jargon to show expertise",
				"Adapt your language to your audience and focus on key insights",
				"Read directly from slides",
				"Speak as quickly as possible to save time",
			},
			CorrectAnswer: 1,
			Category:      "Communication",
		},
		{
			ID:       "ss4",
			Question: "Your team is falling behind schedule on a project. What's your priority as a leader?",
			Options: []string{
				"Blame team members for delays",
				"Work overtime alone to catch up",
				"Assess bottlenecks, redistribute tasks, and support the team",
				"Ask for deadline extension immediately",
			},
			CorrectAnswer: 2,
			Category:      "Leadership",
		},
		{
			ID:       "ss5",
			Question: "A team member consistently produces excellent work but has poor attendance. How do you handle this?",
			Options: []string{
				"Ignore it since their work is good",
				"Have a private conversation to understand the issue and find a solution",
				"Publicly call them out in a meeting",
				"Report them to HR immediately",
			},
			CorrectAnswer: 1,
			Category:      "Leadership",
		},
		{
			ID:       "ss6",
			Question: "When delegating tasks, what's most important?",
			Options: []string{
				"Assign tasks based on who has the lightest workload",
				"Do everything yourself to ensure quality",
				"Match tasks to team members' strengths and developmental goals",
				"Assign tasks randomly for fairness",
			},
			CorrectAnswer: 2,
			Category:      "Leadership",
		},
		{
			ID:       "ss7",
			Question: "Two team members have a disagreement that's affecting the project. What do you do?",
			Options: []string{
				"Take sides with the person you agree with",
				"Ignore it and hope it resolves itself",
				"Facilitate a discussion to help them find common ground",
				"Remove both from the project",
			},
			CorrectAnswer: 2,
			Category:      "Teamwork",
		},
		{
			ID:       "ss8",
			Question: "Your idea was rejected in favor of another team member's approach. How do you respond?",
			Options: []string{
				"Withdraw from participating actively",
				"Argue why your idea was better",
				"Support the chosen approach and contribute your best effort",
				"Complain to others outside the team",
			},
			CorrectAnswer: 2,
			Category:      "Teamwork",
		},
		{
			ID:       "ss9",
			Question: "A team member needs help with a task, but you're busy with your own work. What do you do?",
			Options: []string{
				"Tell them you're too busy",
				"Do their task for them",
				"Schedule time to help them or connect them with someone who can",
				"Report them for not being able to complete their work",
			},
			CorrectAnswer: 2,
			Category:      "Teamwork",
		},
		{
			ID:       "ss10",
			Question: "You encounter a complex problem with no obvious solution. What's your first step?",
			Options: []string{
				"Make a quick guess and implement it",
				"Ask someone else to solve it",
				"Break it down into smaller parts and analyze each component",
				"Escalate immediately to management",
			},
			CorrectAnswer: 2,
			Category:      "Problem Solving",
		},
		{
			ID:       "ss11",
			Question: "A solution you implemented isn't working as expected. What do you do?",
			Options: []string{
				"Blame external factors",
				"Hide the issue and hope no one notices",
				"Analyze what went wrong, learn from it, and iterate",
				"Give up and try something completely different",
			},
			CorrectAnswer: 2,
			Category:      "Problem Solving",
		},
		{
			ID:       "ss12",
			Question: "When faced with multiple urgent issues, how do you prioritize?",
			Options: []string{
				"Work on the easiest ones first",
				"Tackle them in the order they arrived",
				"Assess impact and urgency, then prioritize accordingly",
				"Work on all of them simultaneously",
			},
			CorrectAnswer: 2,
			Category:      "Problem Solving",
		},
		{
			ID:       "ss13",
			Question: "Your project requirements suddenly change midway. How do you react?",
			Options: []string{
				"Complain about the change",
				"Continue with the original plan",
				"Quickly reassess and adjust your approach to meet new requirements",
				"Refuse to make changes",
			},
			CorrectAnswer: 2,
			Category:      "Adaptability",
		},
		{
			ID:       "ss14",
			Question: "You're asked to learn a new technology for an upcoming project. What's your approach?",
			Options: []string{
				"Decline because you prefer familiar tools",
				"Say yes but don't actually learn it",
				"Embrace the opportunity and create a structured learning plan",
				"Learn only the bare minimum required",
			},
			CorrectAnswer: 2,
			Category:      "Adaptability",
		},
		{
			ID:       "ss15",
			Question: "You receive feedback that your work style isn't meshing well with the team. How do you respond?",
			Options: []string{
				"Insist the team should adapt to you",
				"Ignore the feedback",
				"Seek to understand the concerns and find ways to adjust",
				"Look for a different team",
			},
			CorrectAnswer: 2,
			Category:      "Adaptability",
		},
		{
			ID:       "ss16",
			Question: "You have multiple deadlines approaching. How do you manage them?",
			Options: []string{
				"Work on whichever task you feel like at the moment",
				"Create a prioritized schedule with buffer time for unexpected issues",
				"Try to complete everything at once",
				"Ask for extensions on all deadlines",
			},
			CorrectAnswer: 1,
			Category:      "Time Management",
		},
		{
			ID:       "ss17",
			Question: "A colleague keeps interrupting you with non-urgent questions. What do you do?",
			Options: []string{
				"Ignore all their questions",
				"Drop everything to help them each time",
				"Set boundaries and suggest specific times for discussions",
				"Complain to their manager",
			},
			CorrectAnswer: 2,
			Category:      "Time Management",
		},
		{
			ID:       "ss18",
			Question: "You realize you've underestimated the time needed for a task. What's your best approach?",
			Options: []string{
				"Rush to finish on time regardless of quality",
				"Communicate early with stakeholders about the revised timeline",
				"Work all night to meet the original deadline",
				"Deliver incomplete work on time",
			},
			CorrectAnswer: 1,
			Category:      "Time Management",
		},
		{
			ID:       "ss19",
			Question: "A team member seems upset but hasn't said anything. What do you do?",
			Options: []string{
				"Ignore it, it's their personal issue",
				"Announce it in the team meeting",
				"Privately check in with them to see if they're okay",
				"Tell others about your observations",
			},
			CorrectAnswer: 2,
			Category:      "Emotional Intelligence",
		},
		{
			ID:       "ss20",
			Question: "You're feeling overwhelmed with work. What's the healthiest response?",
			Options: []string{
				"Keep quiet and power through",
				"Take out frustrations on colleagues",
				"Communicate your workload concerns and ask for support if needed",
				"Quit immediately",
			},
			CorrectAnswer: 2,
			Category:      "Emotional Intelligence",
		},
		{
			ID:       "ss21",
			Question: "A colleague receives recognition for a project you both worked on. How do you feel and respond?",
			Options: []string{
				"Feel resentful and distance yourself from them",
				"Publicly point out your contributions",
				"Feel happy for them and mention your collaboration naturally if it comes up",
				"Demand equal recognition immediately",
			},
			CorrectAnswer: 2,
			Category:      "Emotional Intelligence",
		},
	}
}
