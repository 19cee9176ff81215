package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"interview-coach/internal/app/repository"
)

// NewSQLiteDB opens (creating if needed) the database file and makes sure
// the schema exists.
func NewSQLiteDB(ctx context.Context, dbFilePath string) (*repository.SQLStore, error) {
	if dir := filepath.Dir(dbFilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", DSN(dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := repository.NewSQLStore(db, "sqlite3")
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// DSN builds a connection string that serializes writers instead of failing
// with SQLITE_BUSY when two turns commit at the same time.
func DSN(dbFilePath string) string {
	params := []string{
		"_busy_timeout=5000",
		"_journal_mode=WAL",
		"_txlock=immediate",
		"_foreign_keys=on",
	}
	return fmt.Sprintf("file:%s?%s", dbFilePath, strings.Join(params, "&"))
}
