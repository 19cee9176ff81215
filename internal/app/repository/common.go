package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// SQLStore implements SessionRepository on database/sql for both SQLite
// and PostgreSQL
type SQLStore struct {
	db           *sql.DB
	driverName   string
	placeholders PlaceholderFunc
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewSQLStore creates a new SQLStore instance
func NewSQLStore(db *sql.DB, driverName string) *SQLStore {
	var placeholders PlaceholderFunc

	switch driverName {
	case "sqlite3":
		placeholders = func(n int) string { return "?" }
	case "postgres":
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	return &SQLStore{
		db:           db,
		driverName:   driverName,
		placeholders: placeholders,
	}
}

// rebind rewrites '?' markers into the dialect's placeholders
func (c *SQLStore) rebind(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString(c.placeholders(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EnsureSchema creates the tables if they do not exist
func (c *SQLStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaFor(c.driverName) {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// CreateSession inserts a new session row
func (c *SQLStore) CreateSession(ctx context.Context, session *model.Session) error {
	transcript, err := json.Marshal(session.Transcript)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	query := c.rebind(`INSERT INTO sessions (
			id, company, position, difficulty, question_limit,
			questions_answered, transcript, revision, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = c.db.ExecContext(ctx, query,
		session.ID, session.Company, session.Position, session.Difficulty, session.QuestionLimit,
		session.QuestionsAnswered, string(transcript), session.Revision,
		session.CreatedAt.Unix(), session.UpdatedAt.Unix(),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInsertFailed, err.Error())
	}
	return nil
}

const sessionColumns = `id, company, position, difficulty, question_limit,
		questions_answered, transcript, revision, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*model.Session, error) {
	var (
		s                    model.Session
		transcript           string
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&s.ID, &s.Company, &s.Position, &s.Difficulty, &s.QuestionLimit,
		&s.QuestionsAnswered, &transcript, &s.Revision, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(transcript), &s.Transcript); err != nil {
		return nil, fmt.Errorf("decode transcript of session %s: %w", s.ID, err)
	}
	if s.Transcript == nil {
		s.Transcript = []model.TranscriptEntry{}
	}
	s.CreatedAt = time.Unix(createdAt, 0)
	s.UpdatedAt = time.Unix(updatedAt, 0)
	return &s, nil
}

// GetSession loads a session by id
func (c *SQLStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	query := c.rebind(`SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`)

	session, err := scanSession(c.db.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	return session, nil
}

// ListSessions returns the most recent sessions first
func (c *SQLStore) ListSessions(ctx context.Context, limit int) ([]model.Session, error) {
	query := c.rebind(`SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at DESC, id LIMIT ?`)

	rows, err := c.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	defer rows.Close()

	sessions := make([]model.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrScanFailed, err.Error())
		}
		sessions = append(sessions, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return sessions, nil
}

// CommitTurn updates the session with a revision check and inserts the turn
// in one transaction. On success session.Revision and turn.ID are updated.
func (c *SQLStore) CommitTurn(ctx context.Context, session *model.Session, expectedRevision int64, turn *model.Turn) error {
	transcript, err := json.Marshal(session.Transcript)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	update := c.rebind(`UPDATE sessions
		SET questions_answered = ?, transcript = ?, revision = revision + 1, updated_at = ?
		WHERE id = ? AND revision = ?`)
	res, err := tx.ExecContext(ctx, update,
		session.QuestionsAnswered, string(transcript), session.UpdatedAt.Unix(),
		session.ID, expectedRevision,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpdateFailed, err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpdateFailed, err.Error())
	}
	if affected == 0 {
		return c.missingOrStale(ctx, tx, session.ID)
	}

	id, err := c.insertTurn(ctx, tx, turn)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInsertFailed, err.Error())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit turn: %w", err)
	}

	session.Revision = expectedRevision + 1
	turn.ID = id
	return nil
}

func (c *SQLStore) missingOrStale(ctx context.Context, tx *sql.Tx, id string) error {
	var exists int
	err := tx.QueryRowContext(ctx, c.rebind(`SELECT 1 FROM sessions WHERE id = ?`), id).Scan(&exists)
	if stderrors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrSessionNotFound
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	return apperrors.ErrConflict
}

func (c *SQLStore) insertTurn(ctx context.Context, tx *sql.Tx, turn *model.Turn) (int64, error) {
	query := `INSERT INTO turns (
			session_id, question, answer,
			technical_score, clarity_score, structure_score, confidence_score, professionalism_score,
			strengths, weaknesses, improvement_plan, coach_feedback, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{
		turn.SessionID, turn.Question, turn.Answer,
		turn.Scores.Technical, turn.Scores.Clarity, turn.Scores.Structure,
		turn.Scores.Confidence, turn.Scores.Professionalism,
		turn.Strengths, turn.Weaknesses, turn.ImprovementPlan, turn.CoachFeedback,
		turn.CreatedAt.Unix(),
	}

	// lib/pq has no LastInsertId
	if c.driverName == "postgres" {
		var id int64
		err := tx.QueryRowContext(ctx, c.rebind(query+` RETURNING id`), args...).Scan(&id)
		return id, err
	}

	res, err := tx.ExecContext(ctx, c.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListTurns returns the turns of a session in the order they were answered
func (c *SQLStore) ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	query := c.rebind(`SELECT id, session_id, question, answer,
			technical_score, clarity_score, structure_score, confidence_score, professionalism_score,
			strengths, weaknesses, improvement_plan, coach_feedback, created_at
		FROM turns WHERE session_id = ? ORDER BY id`)

	rows, err := c.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err.Error())
	}
	defer rows.Close()

	turns := make([]model.Turn, 0)
	for rows.Next() {
		var (
			t         model.Turn
			createdAt int64
		)
		err := rows.Scan(
			&t.ID, &t.SessionID, &t.Question, &t.Answer,
			&t.Scores.Technical, &t.Scores.Clarity, &t.Scores.Structure,
			&t.Scores.Confidence, &t.Scores.Professionalism,
			&t.Strengths, &t.Weaknesses, &t.ImprovementPlan, &t.CoachFeedback, &createdAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrScanFailed, err.Error())
		}
		t.CreatedAt = time.Unix(createdAt, 0)
		turns = append(turns, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return turns, nil
}

// Close closes the database connection
func (c *SQLStore) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// DB returns the underlying database connection
func (c *SQLStore) DB() *sql.DB {
	return c.db
}
