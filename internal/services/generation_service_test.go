package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"classkit/internal/apierr"
	"classkit/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

type fakeBackend struct {
	resp string
	err  error
}

func (f *fakeBackend) GenerateJSON(ctx context.Context, prompt, schemaHint string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.resp), nil
}

func TestGenerateSlidesWithoutBackendServesDemoDeck(t *testing.T) {
	svc := NewGenerationService(nil, testLogger(t))

	deck, fallback, err := svc.GenerateSlides(context.Background(), GenerationContext{Subject: "Science", Grade: "5th"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fallback {
		t.Fatalf("expected fallback=true with no backend configured")
	}
	if deck.DeckTitle != "Demo: The Solar System" {
		t.Fatalf("unexpected deck title %q", deck.DeckTitle)
	}
	if len(deck.Slides) != 3 {
		t.Fatalf("expected exactly 3 slides, got %d", len(deck.Slides))
	}
}

func TestGenerateWithoutBackendServesDemoPosterAndAssignment(t *testing.T) {
	svc := NewGenerationService(nil, testLogger(t))

	poster, fallback, err := svc.GeneratePoster(context.Background(), GenerationContext{})
	if err != nil || !fallback {
		t.Fatalf("poster: err=%v fallback=%v", err, fallback)
	}
	if poster.PosterTitle != "Lab Safety Rules" || len(poster.Sections) != 2 {
		t.Fatalf("unexpected demo poster: %+v", poster)
	}

	assignment, fallback, err := svc.GenerateAssignment(context.Background(), GenerationContext{})
	if err != nil || !fallback {
		t.Fatalf("assignment: err=%v fallback=%v", err, fallback)
	}
	if assignment.AssignmentTitle != "Solar System Quiz" || len(assignment.Questions) != 2 {
		t.Fatalf("unexpected demo assignment: %+v", assignment)
	}
}

func TestGenerateSlidesParsesBackendResponse(t *testing.T) {
	backend := &fakeBackend{resp: `{
		"deck_title": "Photosynthesis",
		"slides": [
			{"type": "title", "title": "Photosynthesis", "bullets": [], "speaker_notes": "hi"},
			{"type": "content", "title": "Inputs", "bullets": ["Light", "Water"], "speaker_notes": ""}
		]
	}`}
	svc := NewGenerationService(backend, testLogger(t))

	deck, fallback, err := svc.GenerateSlides(context.Background(), GenerationContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback {
		t.Fatalf("expected fallback=false with a configured backend")
	}
	if deck.DeckTitle != "Photosynthesis" || len(deck.Slides) != 2 {
		t.Fatalf("unexpected deck: %+v", deck)
	}
}

func TestGenerateSlidesReportsBackendFailure(t *testing.T) {
	backend := &fakeBackend{err: fmt.Errorf("quota exceeded")}
	svc := NewGenerationService(backend, testLogger(t))

	_, _, err := svc.GenerateSlides(context.Background(), GenerationContext{})
	if err == nil {
		t.Fatalf("expected error from failing backend")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeGenerationFailed {
		t.Fatalf("expected generation_failed, got %v", err)
	}
}

func TestGenerateSlidesRejectsInvalidJSON(t *testing.T) {
	backend := &fakeBackend{resp: "this is not json"}
	svc := NewGenerationService(backend, testLogger(t))

	_, _, err := svc.GenerateSlides(context.Background(), GenerationContext{})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeGenerationFailed {
		t.Fatalf("expected generation_failed for invalid JSON, got %v", err)
	}
}

func TestGenerateSlidesRejectsUnknownSlideType(t *testing.T) {
	backend := &fakeBackend{resp: `{"deck_title": "x", "slides": [{"type": "hero", "title": "t"}]}`}
	svc := NewGenerationService(backend, testLogger(t))

	_, _, err := svc.GenerateSlides(context.Background(), GenerationContext{})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeGenerationFailed {
		t.Fatalf("expected generation_failed for unknown slide type, got %v", err)
	}
}

func TestCleanJSONResponse(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n{\"a\":1}\n```":            `{"a":1}`,
		"  \n```json\n{\"a\":1}\n```\n ": `{"a":1}`,
	}
	for in, want := range cases {
		if got := cleanJSONResponse(in); got != want {
			t.Fatalf("cleanJSONResponse(%q) = %q, want %q", in, got, want)
		}
	}
}
