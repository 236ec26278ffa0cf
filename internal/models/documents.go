package models

import "fmt"

// DocumentKind selects which of the three generated documents an operation
// targets.
type DocumentKind string

const (
	KindSlides     DocumentKind = "slides"
	KindPoster     DocumentKind = "poster"
	KindAssignment DocumentKind = "assignment"
)

func ParseDocumentKind(s string) (DocumentKind, error) {
	switch DocumentKind(s) {
	case KindSlides, KindPoster, KindAssignment:
		return DocumentKind(s), nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

type SlideType string

const (
	SlideTitle   SlideType = "title"
	SlideContent SlideType = "content"
	SlideSummary SlideType = "summary"
)

func (t SlideType) Valid() bool {
	switch t {
	case SlideTitle, SlideContent, SlideSummary:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionMCQ   QuestionType = "mcq"
	QuestionShort QuestionType = "short"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMCQ, QuestionShort:
		return true
	}
	return false
}

type Slide struct {
	Type         SlideType `json:"type"`
	Title        string    `json:"title"`
	Bullets      []string  `json:"bullets"`
	SpeakerNotes string    `json:"speaker_notes"`
}

type SlideDeck struct {
	DeckTitle string  `json:"deck_title"`
	Slides    []Slide `json:"slides"`
}

func (d *SlideDeck) IsEmpty() bool {
	return d == nil || (d.DeckTitle == "" && len(d.Slides) == 0)
}

// Validate rejects decks with slide types outside the closed set. Used on
// freshly generated content; documents read back from storage are rendered
// leniently instead.
func (d *SlideDeck) Validate() error {
	for i, s := range d.Slides {
		if !s.Type.Valid() {
			return fmt.Errorf("slide %d: unknown slide type %q", i+1, s.Type)
		}
	}
	return nil
}

type PosterSection struct {
	Heading     string   `json:"heading"`
	BodyBullets []string `json:"body_bullets"`
}

type Poster struct {
	PosterTitle   string          `json:"poster_title"`
	Sections      []PosterSection `json:"sections"`
	FooterCallout string          `json:"footer_callout"`
}

func (p *Poster) IsEmpty() bool {
	return p == nil || (p.PosterTitle == "" && len(p.Sections) == 0 && p.FooterCallout == "")
}

func (p *Poster) Validate() error { return nil }

type Question struct {
	Type        QuestionType `json:"type"`
	Prompt      string       `json:"prompt"`
	Choices     []string     `json:"choices"`
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
}

type Assignment struct {
	AssignmentTitle string     `json:"assignment_title"`
	Instructions    string     `json:"instructions"`
	Questions       []Question `json:"questions"`
	Rubric          []string   `json:"rubric"`
}

func (a *Assignment) IsEmpty() bool {
	return a == nil || (a.AssignmentTitle == "" && a.Instructions == "" && len(a.Questions) == 0)
}

func (a *Assignment) Validate() error {
	for i, q := range a.Questions {
		if !q.Type.Valid() {
			return fmt.Errorf("question %d: unknown question type %q", i+1, q.Type)
		}
	}
	return nil
}

// StudentCopy returns the assignment with everything a student must not see
// removed: answers, explanations, and the grading rubric.
func (a *Assignment) StudentCopy() *Assignment {
	if a == nil {
		return nil
	}
	out := &Assignment{
		AssignmentTitle: a.AssignmentTitle,
		Instructions:    a.Instructions,
	}
	for _, q := range a.Questions {
		out.Questions = append(out.Questions, Question{
			Type:    q.Type,
			Prompt:  q.Prompt,
			Choices: q.Choices,
		})
	}
	return out
}
