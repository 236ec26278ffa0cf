package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createProjectsTable,
		createProjectTokenIndexes,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  title TEXT NOT NULL,
  subject TEXT NOT NULL DEFAULT '',
  grade TEXT NOT NULL DEFAULT '',
  source_notes TEXT NOT NULL DEFAULT '',
  slides_json TEXT,
  poster_json TEXT,
  assignment_json TEXT,
  teacher_token UUID NOT NULL UNIQUE,
  student_token UUID NOT NULL UNIQUE
);
`

const createProjectTokenIndexes = `
CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at DESC);
`
