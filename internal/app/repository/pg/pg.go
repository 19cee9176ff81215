package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"interview-coach/internal/app/repository"
)

// NewPostgresDB connects to PostgreSQL and makes sure the schema exists
func NewPostgresDB(ctx context.Context, connectionString string) (*repository.SQLStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	store := repository.NewSQLStore(db, "postgres")
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
