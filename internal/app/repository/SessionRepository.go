package repository

import (
	"context"

	"interview-coach/internal/app/model"
)

// SessionRepository is the single writer of record for sessions and turns.
//
// CommitTurn persists an answered turn: the session row is updated only if
// its stored revision still equals expectedRevision, and the turn is
// inserted in the same transaction. A stale revision yields
// errors.ErrConflict and nothing is written.
type SessionRepository interface {
	Close() error

	EnsureSchema(ctx context.Context) error

	CreateSession(ctx context.Context, session *model.Session) error

	GetSession(ctx context.Context, id string) (*model.Session, error)

	ListSessions(ctx context.Context, limit int) ([]model.Session, error)

	CommitTurn(ctx context.Context, session *model.Session, expectedRevision int64, turn *model.Turn) error

	ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error)
}
