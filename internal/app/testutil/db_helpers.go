package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"interview-coach/internal/app/model"
	"interview-coach/internal/app/repository"
	"interview-coach/internal/app/repository/sqlite"
)

// NewTestStore creates a SQLite store in a temporary directory
func NewTestStore(t *testing.T) *repository.SQLStore {
	t.Helper()

	store, err := sqlite.NewSQLiteDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create SQLite test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// SeedSession persists a session with one pending question
func SeedSession(t *testing.T, store repository.SessionRepository, id string, limit int, question string) *model.Session {
	t.Helper()

	s := model.NewSession(id, "Acme", "Backend Engineer", "Intermediate", limit, time.Unix(1700000000, 0))
	s.AskQuestion(question)
	if err := store.CreateSession(context.Background(), s); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	return s
}
