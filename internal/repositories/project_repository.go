package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classkit/internal/models"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Upsert inserts the project if its id is unseen, otherwise overwrites the
// mutable fields in place. Tokens and created_at are never updated.
func (r *ProjectRepository) Upsert(project *models.Project) error {
	ctx := context.Background()

	project.Prepare()

	query := `
		INSERT INTO projects (id, created_at, title, subject, grade, source_notes,
			slides_json, poster_json, assignment_json, teacher_token, student_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subject = EXCLUDED.subject,
			grade = EXCLUDED.grade,
			source_notes = EXCLUDED.source_notes,
			slides_json = EXCLUDED.slides_json,
			poster_json = EXCLUDED.poster_json,
			assignment_json = EXCLUDED.assignment_json
	`

	createdAt := project.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
		project.CreatedAt = createdAt
	}

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		createdAt,
		project.Title,
		project.Subject,
		project.Grade,
		project.SourceNotes,
		marshalDoc(project.Slides),
		marshalDoc(project.Poster),
		marshalDoc(project.Assignment),
		project.TeacherToken,
		project.StudentToken,
	)

	return err
}

func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	ctx := context.Background()

	query := selectProject + ` WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByToken looks a project up by one of its bearer tokens. role selects
// which token column to match. An unrecognized token yields (nil, nil).
func (r *ProjectRepository) GetByToken(token uuid.UUID, role models.TokenRole) (*models.Project, error) {
	ctx := context.Background()

	query := selectProject + ` WHERE student_token = $1`
	if role == models.RoleTeacher {
		query = selectProject + ` WHERE teacher_token = $1`
	}
	return r.scanOne(r.pool.QueryRow(ctx, query, token))
}

func (r *ProjectRepository) ListAll() ([]models.ProjectSummary, error) {
	ctx := context.Background()

	query := `
		SELECT id, title, subject, grade, created_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.ProjectSummary
	for rows.Next() {
		var s models.ProjectSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Subject, &s.Grade, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

const selectProject = `
	SELECT id, created_at, title, subject, grade, source_notes,
		slides_json, poster_json, assignment_json, teacher_token, student_token
	FROM projects
`

func (r *ProjectRepository) scanOne(row pgx.Row) (*models.Project, error) {
	var project models.Project
	var slidesRaw, posterRaw, assignmentRaw *string

	err := row.Scan(
		&project.ID,
		&project.CreatedAt,
		&project.Title,
		&project.Subject,
		&project.Grade,
		&project.SourceNotes,
		&slidesRaw,
		&posterRaw,
		&assignmentRaw,
		&project.TeacherToken,
		&project.StudentToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	project.Slides = unmarshalDoc[models.SlideDeck](slidesRaw)
	project.Poster = unmarshalDoc[models.Poster](posterRaw)
	project.Assignment = unmarshalDoc[models.Assignment](assignmentRaw)

	return &project, nil
}

// marshalDoc serializes a document pointer to the text column value; absent
// documents store as NULL.
func marshalDoc(doc any) *string {
	switch v := doc.(type) {
	case *models.SlideDeck:
		if v == nil {
			return nil
		}
	case *models.Poster:
		if v == nil {
			return nil
		}
	case *models.Assignment:
		if v == nil {
			return nil
		}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

// unmarshalDoc parses a stored JSON column. Malformed or empty text reads
// back as an absent document rather than an error.
func unmarshalDoc[T any](raw *string) *T {
	if raw == nil || *raw == "" {
		return nil
	}
	var doc T
	if err := json.Unmarshal([]byte(*raw), &doc); err != nil {
		return nil
	}
	return &doc
}
