package services

import "classkit/internal/models"

// Fixed demo documents served when no generation backend is configured, so
// the whole pipeline stays usable offline.

func DemoSlideDeck() *models.SlideDeck {
	return &models.SlideDeck{
		DeckTitle: "Demo: The Solar System",
		Slides: []models.Slide{
			{Type: models.SlideTitle, Title: "The Solar System", Bullets: []string{}, SpeakerNotes: "Intro"},
			{Type: models.SlideContent, Title: "Inner Planets", Bullets: []string{"Mercury", "Venus", "Earth", "Mars"}, SpeakerNotes: "Rocky planets."},
			{Type: models.SlideSummary, Title: "Review", Bullets: []string{"8 Planets", "Sun is a star"}, SpeakerNotes: "Wrap up."},
		},
	}
}

func DemoPoster() *models.Poster {
	return &models.Poster{
		PosterTitle: "Lab Safety Rules",
		Sections: []models.PosterSection{
			{Heading: "Protection", BodyBullets: []string{"Wear Goggles", "Use Gloves"}},
			{Heading: "Behavior", BodyBullets: []string{"No running", "No eating"}},
		},
		FooterCallout: "Stay Safe!",
	}
}

func DemoAssignment() *models.Assignment {
	return &models.Assignment{
		AssignmentTitle: "Solar System Quiz",
		Instructions:    "Answer all questions.",
		Questions: []models.Question{
			{Type: models.QuestionMCQ, Prompt: "Which is the red planet?", Choices: []string{"Mars", "Venus"}, Answer: "Mars", Explanation: "Iron oxide dust."},
			{Type: models.QuestionShort, Prompt: "Name the largest planet.", Choices: []string{}, Answer: "Jupiter", Explanation: "Gas giant."},
		},
		Rubric: []string{"1pt per correct answer"},
	}
}
