package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"classkit/internal/database"
	"classkit/internal/models"
)

var (
	poolOnce sync.Once
	pool     *pgxpool.Pool
	poolErr  error
)

// testPool starts a throwaway postgres container once per test binary and
// runs the migrations against it. The container is reaped automatically.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed repository tests in short mode")
	}

	poolOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx, "postgres:16-alpine",
			postgres.WithDatabase("classkit_test"),
			postgres.WithUsername("classkit"),
			postgres.WithPassword("classkit"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			poolErr = err
			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			poolErr = err
			return
		}

		p, err := database.ConnectDSN(dsn)
		if err != nil {
			poolErr = err
			return
		}
		if err := database.RunMigrations(p); err != nil {
			poolErr = err
			return
		}
		pool = p
	})
	if poolErr != nil {
		t.Fatalf("starting postgres container: %v", poolErr)
	}
	return pool
}

func newTestProject(title string) *models.Project {
	p := &models.Project{
		Title:       title,
		Subject:     "Science",
		Grade:       "5th",
		SourceNotes: "The water cycle",
	}
	p.Prepare()
	return p
}

func TestUpsertRoundTrip(t *testing.T) {
	repo := NewProjectRepository(testPool(t))

	project := newTestProject("Water Cycle Unit")
	project.Slides = &models.SlideDeck{
		DeckTitle: "The Water Cycle",
		Slides:    []models.Slide{{Type: models.SlideTitle, Title: "The Water Cycle"}},
	}
	project.Assignment = &models.Assignment{
		AssignmentTitle: "Water Cycle Quiz",
		Questions: []models.Question{{
			Type: models.QuestionShort, Prompt: "Name the phases.", Answer: "Evaporation, condensation, precipitation",
		}},
	}

	if err := repo.Upsert(project); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetByID(project.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("stored project not found")
	}
	if got.Title != project.Title || got.Subject != project.Subject || got.Grade != project.Grade {
		t.Fatalf("round-trip mismatch: got %+v", got)
	}
	if got.Slides == nil || got.Slides.DeckTitle != "The Water Cycle" {
		t.Fatalf("slides did not survive the round trip: %+v", got.Slides)
	}
	if got.Poster != nil {
		t.Fatalf("absent poster came back non-nil")
	}
	if got.Assignment == nil || len(got.Assignment.Questions) != 1 {
		t.Fatalf("assignment did not survive the round trip: %+v", got.Assignment)
	}
	if got.TeacherToken != project.TeacherToken || got.StudentToken != project.StudentToken {
		t.Fatalf("tokens changed during round trip")
	}
}

func TestUpsertPreservesTokensAndCreatedAt(t *testing.T) {
	repo := NewProjectRepository(testPool(t))

	project := newTestProject("Fractions Review")
	if err := repo.Upsert(project); err != nil {
		t.Fatalf("insert: %v", err)
	}

	first, err := repo.GetByID(project.ID)
	if err != nil || first == nil {
		t.Fatalf("get after insert: %v, %v", first, err)
	}

	project.Title = "Fractions Review (Updated)"
	project.Poster = &models.Poster{PosterTitle: "Fraction Facts"}
	if err := repo.Upsert(project); err != nil {
		t.Fatalf("update: %v", err)
	}

	second, err := repo.GetByID(project.ID)
	if err != nil || second == nil {
		t.Fatalf("get after update: %v, %v", second, err)
	}
	if second.Title != "Fractions Review (Updated)" {
		t.Fatalf("update did not apply: %q", second.Title)
	}
	if second.Poster == nil || second.Poster.PosterTitle != "Fraction Facts" {
		t.Fatalf("poster not stored on update")
	}
	if second.TeacherToken != first.TeacherToken || second.StudentToken != first.StudentToken {
		t.Fatalf("tokens rotated on update")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on update: %v vs %v", second.CreatedAt, first.CreatedAt)
	}
}

func TestGetByTokenMatchesRole(t *testing.T) {
	repo := NewProjectRepository(testPool(t))

	project := newTestProject("Token Lookup")
	if err := repo.Upsert(project); err != nil {
		t.Fatalf("insert: %v", err)
	}

	byStudent, err := repo.GetByToken(project.StudentToken, models.RoleStudent)
	if err != nil {
		t.Fatalf("student lookup: %v", err)
	}
	if byStudent == nil || byStudent.ID != project.ID {
		t.Fatalf("student token did not resolve the project")
	}

	byTeacher, err := repo.GetByToken(project.TeacherToken, models.RoleTeacher)
	if err != nil {
		t.Fatalf("teacher lookup: %v", err)
	}
	if byTeacher == nil || byTeacher.ID != project.ID {
		t.Fatalf("teacher token did not resolve the project")
	}

	// A teacher token presented as a student token must not match.
	crossed, err := repo.GetByToken(project.TeacherToken, models.RoleStudent)
	if err != nil {
		t.Fatalf("crossed lookup: %v", err)
	}
	if crossed != nil {
		t.Fatalf("teacher token resolved through the student column")
	}
}

func TestTokensStayDistinctAcrossProjects(t *testing.T) {
	repo := NewProjectRepository(testPool(t))

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 20; i++ {
		p := newTestProject("Batch Project")
		if err := repo.Upsert(p); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		for _, tok := range []uuid.UUID{p.TeacherToken, p.StudentToken} {
			if seen[tok] {
				t.Fatalf("token %s minted twice", tok)
			}
			seen[tok] = true
		}
	}
}

func TestGetByUnknownTokenReturnsNil(t *testing.T) {
	repo := NewProjectRepository(testPool(t))

	got, err := repo.GetByToken(uuid.New(), models.RoleStudent)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != nil {
		t.Fatalf("unknown token resolved a project: %+v", got)
	}

	byID, err := repo.GetByID(uuid.New())
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if byID != nil {
		t.Fatalf("unknown id resolved a project")
	}
}

func TestListAllNewestFirst(t *testing.T) {
	repo := NewProjectRepository(testPool(t))

	older := newTestProject("Older Project")
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	newer := newTestProject("Newer Project")
	newer.CreatedAt = time.Now().Add(-1 * time.Hour)

	if err := repo.Upsert(older); err != nil {
		t.Fatalf("insert older: %v", err)
	}
	if err := repo.Upsert(newer); err != nil {
		t.Fatalf("insert newer: %v", err)
	}

	summaries, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	olderPos, newerPos := -1, -1
	for i, s := range summaries {
		switch s.ID {
		case older.ID:
			olderPos = i
		case newer.ID:
			newerPos = i
		}
	}
	if olderPos < 0 || newerPos < 0 {
		t.Fatalf("inserted projects missing from listing")
	}
	if newerPos > olderPos {
		t.Fatalf("listing is not newest-first: newer at %d, older at %d", newerPos, olderPos)
	}
}

func TestMalformedStoredDocumentReadsAsAbsent(t *testing.T) {
	p := testPool(t)
	repo := NewProjectRepository(p)

	project := newTestProject("Corrupt Column")
	if err := repo.Upsert(project); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := p.Exec(context.Background(),
		`UPDATE projects SET slides_json = '{not json' WHERE id = $1`, project.ID)
	if err != nil {
		t.Fatalf("corrupting column: %v", err)
	}

	got, err := repo.GetByID(project.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("project not found")
	}
	if got.Slides != nil {
		t.Fatalf("malformed slides column should read back as absent")
	}
}
