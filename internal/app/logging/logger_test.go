package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	for _, dev := range []bool{true, false} {
		logger, err := NewLogger(dev)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestSessionLoggerCarriesID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	Session(zap.New(core), "abc").Info("turn committed")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["session_id"])
}
