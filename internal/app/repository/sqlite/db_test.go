package sqlite

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
	"interview-coach/internal/app/repository"
)

func newTestStore(t *testing.T) *repository.SQLStore {
	t.Helper()
	store, err := NewSQLiteDB(context.Background(), filepath.Join(t.TempDir(), "coach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newPendingSession(id string) *model.Session {
	s := model.NewSession(id, "Acme", "Backend Engineer", "Hard", 3, time.Unix(1700000000, 0))
	s.AskQuestion("Why Acme?")
	return s
}

func sampleTurn(sessionID string) *model.Turn {
	report := model.ScoreReport{
		Scores:          model.Scores{Technical: 70, Clarity: 80, Structure: 60, Confidence: 75, Professionalism: 90},
		Strengths:       "specific",
		Weaknesses:      "rambling",
		ImprovementPlan: "lead with the result",
	}
	return model.NewTurn(sessionID, "Why Acme?", "Because of the mission", report, "Good start", time.Unix(1700000100, 0))
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	s := newPendingSession("s-1")
	require.NoError(t, store.CreateSession(ctx, s))

	got, err := store.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, 3, got.QuestionLimit)
	assert.Equal(t, int64(1), got.Revision)
	assert.Equal(t, s.Transcript, got.Transcript)
	assert.Equal(t, s.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetSession(context.Background(), "nope")
	assert.True(t, stderrors.Is(err, apperrors.ErrSessionNotFound))
}

func TestSQLiteStore_CommitTurn(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	s := newPendingSession("s-1")
	require.NoError(t, store.CreateSession(ctx, s))

	s.RecordAnswer("Because of the mission")
	s.AskQuestion("Tell me about a failure")
	turn := sampleTurn(s.ID)

	require.NoError(t, store.CommitTurn(ctx, s, 1, turn))
	assert.Equal(t, int64(2), s.Revision)
	assert.NotZero(t, turn.ID)

	got, err := store.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Revision)
	assert.Equal(t, 1, got.QuestionsAnswered)
	assert.Len(t, got.Transcript, 3)

	turns, err := store.ListTurns(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, turn.Scores, turns[0].Scores)
	assert.Equal(t, "Good start", turns[0].CoachFeedback)
}

func TestSQLiteStore_CommitTurnStaleRevision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	s := newPendingSession("s-1")
	require.NoError(t, store.CreateSession(ctx, s))

	first := s.Clone()
	first.RecordAnswer("first")
	require.NoError(t, store.CommitTurn(ctx, first, 1, sampleTurn(s.ID)))

	second := s.Clone()
	second.RecordAnswer("second")
	err := store.CommitTurn(ctx, second, 1, sampleTurn(s.ID))
	assert.True(t, stderrors.Is(err, apperrors.ErrConflict))

	turns, err := store.ListTurns(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, turns, 1, "losing writer must not insert a turn")
}

func TestSQLiteStore_CommitTurnUnknownSession(t *testing.T) {
	store := newTestStore(t)

	s := newPendingSession("ghost")
	err := store.CommitTurn(context.Background(), s, 1, sampleTurn("ghost"))
	assert.True(t, stderrors.Is(err, apperrors.ErrSessionNotFound))
}

func TestSQLiteStore_ConcurrentCommitsOneWinner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	s := newPendingSession("s-1")
	require.NoError(t, store.CreateSession(ctx, s))

	const writers = 4
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := s.Clone()
			c.RecordAnswer("answer")
			errs[i] = store.CommitTurn(ctx, c, 1, sampleTurn(s.ID))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, stderrors.Is(err, apperrors.ErrConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, wins)
}

func TestSQLiteStore_ListSessions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := model.NewSession("old", "", "", "", 1, time.Unix(1000, 0))
	newer := model.NewSession("new", "", "", "", 1, time.Unix(2000, 0))
	require.NoError(t, store.CreateSession(ctx, older))
	require.NoError(t, store.CreateSession(ctx, newer))

	sessions, err := store.ListSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].ID)

	sessions, err = store.ListSessions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/x.db")
	assert.Contains(t, dsn, "file:/tmp/x.db?")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_txlock=immediate")
}
