package services

import (
	"context"
	"encoding/json"
	"fmt"

	"classkit/internal/apierr"
	"classkit/internal/logger"
	"classkit/internal/models"
)

const (
	slidesSchemaHint = `{
  "deck_title": "string",
  "slides": [
    {"type": "title|content|summary", "title": "string", "bullets": ["string"], "speaker_notes": "string"}
  ]
}`
	posterSchemaHint = `{
  "poster_title": "string",
  "sections": [{"heading": "string", "body_bullets": ["string"]}],
  "footer_callout": "string"
}`
	assignmentSchemaHint = `{
  "assignment_title": "string",
  "instructions": "string",
  "questions": [{"type": "mcq|short", "prompt": "string", "choices": ["string"], "answer": "string", "explanation": "string"}],
  "rubric": ["string"]
}`
)

// GenerationContext carries the topic description the prompts embed.
type GenerationContext struct {
	Subject     string
	Grade       string
	SourceNotes string
}

// GenerationService produces the three structured documents. With no backend
// configured it substitutes the fixed demo documents; with a backend that
// fails it reports GenerationFailed instead of degrading silently. The bool
// return tells the caller whether fallback content was substituted.
type GenerationService struct {
	backend TextBackend
	log     *logger.Logger
}

// NewGenerationService accepts a nil backend; that is the offline mode.
func NewGenerationService(backend TextBackend, log *logger.Logger) *GenerationService {
	return &GenerationService{backend: backend, log: log}
}

func (s *GenerationService) GenerateSlides(ctx context.Context, gc GenerationContext) (*models.SlideDeck, bool, error) {
	if s.backend == nil {
		return DemoSlideDeck(), true, nil
	}
	prompt := fmt.Sprintf("Create a slide deck for %s grade %s about: %s", gc.Grade, gc.Subject, gc.SourceNotes)
	deck, err := generate[models.SlideDeck](ctx, s, prompt, slidesSchemaHint)
	if err != nil {
		return nil, false, err
	}
	return deck, false, nil
}

func (s *GenerationService) GeneratePoster(ctx context.Context, gc GenerationContext) (*models.Poster, bool, error) {
	if s.backend == nil {
		return DemoPoster(), true, nil
	}
	prompt := fmt.Sprintf("Create a one-page educational poster content for %s grade %s about: %s", gc.Grade, gc.Subject, gc.SourceNotes)
	poster, err := generate[models.Poster](ctx, s, prompt, posterSchemaHint)
	if err != nil {
		return nil, false, err
	}
	return poster, false, nil
}

func (s *GenerationService) GenerateAssignment(ctx context.Context, gc GenerationContext) (*models.Assignment, bool, error) {
	if s.backend == nil {
		return DemoAssignment(), true, nil
	}
	prompt := fmt.Sprintf("Create a homework assignment with 3 MCQs and 2 Short Answers for %s grade %s about: %s", gc.Grade, gc.Subject, gc.SourceNotes)
	assignment, err := generate[models.Assignment](ctx, s, prompt, assignmentSchemaHint)
	if err != nil {
		return nil, false, err
	}
	return assignment, false, nil
}

type validatable interface {
	Validate() error
}

func generate[T any, PT interface {
	*T
	validatable
}](ctx context.Context, s *GenerationService, prompt, schemaHint string) (PT, error) {
	raw, err := s.backend.GenerateJSON(ctx, prompt, schemaHint)
	if err != nil {
		s.log.Error("generation backend call failed", "error", err)
		return nil, apierr.GenerationFailed(err)
	}

	doc := PT(new(T))
	if err := json.Unmarshal(raw, doc); err != nil {
		s.log.Error("generation response is not valid JSON", "error", err)
		return nil, apierr.GenerationFailed(fmt.Errorf("model returned invalid JSON: %w", err))
	}
	if err := doc.Validate(); err != nil {
		return nil, apierr.GenerationFailed(err)
	}

	return doc, nil
}
