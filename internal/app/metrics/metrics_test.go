package metrics

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.SessionStarted()
	r.SessionStarted()
	r.TurnCompleted(false)
	r.TurnCompleted(true)
	r.Failed("submit_answer", "provider_rate_limited")
	r.Degraded("coaching")
	r.ObserveProvider("evaluate", time.Now(), nil)
	r.ObserveProvider("evaluate", time.Now(), stderrors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.sessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.turnsCompleted.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.turnFailures.WithLabelValues("submit_answer", "provider_rate_limited")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.degradations.WithLabelValues("coaching")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.providerCalls))

	families, err := r.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "interview_coach_sessions_started_total")
	assert.Contains(t, names, "go_goroutines")
}
