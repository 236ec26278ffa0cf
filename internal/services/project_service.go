package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"classkit/internal/apierr"
	"classkit/internal/logger"
	"classkit/internal/models"
)

// ProjectStore is what the service needs from persistence. The pgx
// repository satisfies it; tests substitute an in-memory store.
type ProjectStore interface {
	Upsert(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByToken(token uuid.UUID, role models.TokenRole) (*models.Project, error)
	ListAll() ([]models.ProjectSummary, error)
}

type ProjectService struct {
	store     ProjectStore
	generator *GenerationService
	log       *logger.Logger
}

func NewProjectService(store ProjectStore, generator *GenerationService, log *logger.Logger) *ProjectService {
	return &ProjectService{
		store:     store,
		generator: generator,
		log:       log,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Grade       string `json:"grade"`
	SourceNotes string `json:"source_notes"`
	// SafetyAck is the teacher's confirmation that the materials are for
	// instruction. Creation is blocked until it is checked.
	SafetyAck bool `json:"safety_ack"`
}

func (s *ProjectService) Create(req CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apierr.ValidationFailed(fmt.Errorf("title is required"))
	}
	if !req.SafetyAck {
		return nil, apierr.ValidationFailed(fmt.Errorf("safety acknowledgement is required"))
	}

	project := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Subject:     req.Subject,
		Grade:       req.Grade,
		SourceNotes: req.SourceNotes,
	}

	if err := s.store.Upsert(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.log.Info("project created", "project_id", project.ID)
	return project, nil
}

func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	project, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apierr.NotFound(fmt.Errorf("project %s not found", id))
	}
	return project, nil
}

func (s *ProjectService) List() ([]models.ProjectSummary, error) {
	return s.store.ListAll()
}

func (s *ProjectService) GetByToken(token uuid.UUID, role models.TokenRole) (*models.Project, error) {
	project, err := s.store.GetByToken(token, role)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apierr.NotFound(fmt.Errorf("invalid %s token", role))
	}
	return project, nil
}

// Generate produces the requested document for a project and stores it,
// replacing any previous version wholesale. A generation failure stores
// nothing and leaves prior content untouched. The bool reports whether
// offline fallback content was substituted.
func (s *ProjectService) Generate(ctx context.Context, id uuid.UUID, kind models.DocumentKind) (*models.Project, bool, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, false, err
	}

	gc := GenerationContext{
		Subject:     project.Subject,
		Grade:       project.Grade,
		SourceNotes: project.SourceNotes,
	}

	var fallback bool
	switch kind {
	case models.KindSlides:
		deck, fb, err := s.generator.GenerateSlides(ctx, gc)
		if err != nil {
			return nil, false, err
		}
		project.Slides = deck
		fallback = fb
	case models.KindPoster:
		poster, fb, err := s.generator.GeneratePoster(ctx, gc)
		if err != nil {
			return nil, false, err
		}
		project.Poster = poster
		fallback = fb
	case models.KindAssignment:
		assignment, fb, err := s.generator.GenerateAssignment(ctx, gc)
		if err != nil {
			return nil, false, err
		}
		project.Assignment = assignment
		fallback = fb
	default:
		return nil, false, apierr.ValidationFailed(fmt.Errorf("unknown document kind %q", kind))
	}

	if err := s.store.Upsert(project); err != nil {
		return nil, false, fmt.Errorf("failed to store generated %s: %w", kind, err)
	}

	s.log.Info("document generated", "project_id", project.ID, "kind", kind, "fallback", fallback)
	return project, fallback, nil
}

// StudentView is the read-only slice of a project a share link exposes.
// The assignment is sanitized: no answers, no explanations, no rubric.
type StudentView struct {
	Title      string             `json:"title"`
	Subject    string             `json:"subject"`
	Grade      string             `json:"grade"`
	Assignment *models.Assignment `json:"assignment,omitempty"`
	Poster     *models.Poster     `json:"poster,omitempty"`
}

func (s *ProjectService) StudentViewOf(project *models.Project) StudentView {
	return StudentView{
		Title:      project.Title,
		Subject:    project.Subject,
		Grade:      project.Grade,
		Assignment: project.Assignment.StudentCopy(),
		Poster:     project.Poster,
	}
}
