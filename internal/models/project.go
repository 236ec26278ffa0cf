package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenRole selects which bearer token a lookup matches against.
type TokenRole string

const (
	RoleTeacher TokenRole = "teacher"
	RoleStudent TokenRole = "student"
)

// Project is the unit of persisted work: one topic plus up to three generated
// documents and two bearer tokens. Tokens and created_at are immutable after
// creation; the document fields are replaced wholesale on regeneration.
type Project struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Grade       string    `json:"grade"`
	SourceNotes string    `json:"source_notes"`

	Slides     *SlideDeck  `json:"slides,omitempty"`
	Poster     *Poster     `json:"poster,omitempty"`
	Assignment *Assignment `json:"assignment,omitempty"`

	// Bearer capabilities. Never serialized into generic API payloads;
	// handlers expose the student token only as part of the share link.
	TeacherToken uuid.UUID `json:"-"`
	StudentToken uuid.UUID `json:"-"`
}

func (p *Project) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.TeacherToken == uuid.Nil {
		p.TeacherToken = uuid.New()
	}
	if p.StudentToken == uuid.Nil {
		p.StudentToken = uuid.New()
	}
}

// ProjectSummary is the dashboard listing row.
type ProjectSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}
