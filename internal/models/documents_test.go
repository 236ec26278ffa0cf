package models

import "testing"

func TestSlideDeckValidateRejectsUnknownType(t *testing.T) {
	deck := &SlideDeck{
		DeckTitle: "t",
		Slides: []Slide{
			{Type: SlideContent, Title: "ok"},
			{Type: SlideType("freeform"), Title: "bad"},
		},
	}
	if err := deck.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown slide type")
	}
}

func TestAssignmentValidateRejectsUnknownQuestionType(t *testing.T) {
	a := &Assignment{
		Questions: []Question{{Type: QuestionType("essay"), Prompt: "p"}},
	}
	if err := a.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown question type")
	}
}

func TestStudentCopyStripsAnswers(t *testing.T) {
	a := &Assignment{
		AssignmentTitle: "Quiz",
		Instructions:    "Answer all.",
		Questions: []Question{
			{Type: QuestionMCQ, Prompt: "Q1", Choices: []string{"a", "b"}, Answer: "a", Explanation: "because"},
			{Type: QuestionShort, Prompt: "Q2", Answer: "x", Explanation: "y"},
		},
		Rubric: []string{"1pt"},
	}

	sc := a.StudentCopy()
	if sc.AssignmentTitle != "Quiz" || sc.Instructions != "Answer all." {
		t.Fatalf("student copy lost title/instructions")
	}
	if len(sc.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(sc.Questions))
	}
	for i, q := range sc.Questions {
		if q.Answer != "" || q.Explanation != "" {
			t.Fatalf("question %d leaked answer or explanation", i+1)
		}
	}
	if len(sc.Rubric) != 0 {
		t.Fatalf("student copy leaked rubric")
	}
	if len(sc.Questions[0].Choices) != 2 {
		t.Fatalf("student copy lost mcq choices")
	}
}

func TestIsEmptyOnNilDocuments(t *testing.T) {
	var deck *SlideDeck
	var poster *Poster
	var assignment *Assignment
	if !deck.IsEmpty() || !poster.IsEmpty() || !assignment.IsEmpty() {
		t.Fatalf("nil documents must report empty")
	}
}

func TestParseDocumentKind(t *testing.T) {
	for _, ok := range []string{"slides", "poster", "assignment"} {
		if _, err := ParseDocumentKind(ok); err != nil {
			t.Fatalf("expected %q to parse: %v", ok, err)
		}
	}
	if _, err := ParseDocumentKind("worksheet"); err == nil {
		t.Fatalf("expected unknown kind to be rejected")
	}
}
