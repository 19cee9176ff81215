package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENROUTER_API_KEY", "GEMINI_API_KEY", "COACH_CONFIG",
		"COACH_LLM_PROVIDER", "COACH_LLM_MODEL", "COACH_DB_DRIVER", "COACH_DB_DSN",
		"REDIS_ADDR", "COACH_PROVIDER_TIMEOUT", "COACH_QUESTION_LIMIT", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, DefaultOpenAIModel, cfg.LLM.Model)
	assert.Equal(t, DefaultProviderTimeout, cfg.Interview.ProviderTimeout)
	assert.Equal(t, DefaultQuestionLimit, cfg.Interview.DefaultQuestionLimit)
	assert.Equal(t, LockLocal, cfg.Lock.Backend)
	assert.True(t, cfg.Server.Development())
}

func TestLoad_OpenRouterKeySelectsOpenRouter(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or-v1-1234567890abcdef1234567890")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenRouter, cfg.LLM.Provider)
	assert.Equal(t, DefaultOpenRouterBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, DefaultOpenRouterModel, cfg.LLM.Model)
	assert.Equal(t, "sk-or-v1-1234567890abcdef1234567890", cfg.LLMKey())
}

func TestLoad_ExplicitProviderWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or-v1-1234567890abcdef1234567890")
	t.Setenv("COACH_LLM_PROVIDER", "gemini")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, DefaultGeminiModel, cfg.LLM.Model)
}

func TestLoad_YAMLFileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "coach.yaml")
	yamlDoc := `
server:
  port: "9090"
  environment: production
database:
  driver: postgres
  dsn: postgres://localhost/coach
interview:
  provider_timeout: 15s
  default_question_limit: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.Development())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 15*time.Second, cfg.Interview.ProviderTimeout)
	assert.Equal(t, 3, cfg.Interview.DefaultQuestionLimit)
	assert.Equal(t, LockRedis, cfg.Lock.Backend)
	assert.Equal(t, "localhost:6379", cfg.Lock.RedisAddr)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*Config)
		errorContains string
	}{
		{
			name:          "unknown driver",
			mutate:        func(c *Config) { c.Database.Driver = "mysql" },
			errorContains: "database.driver",
		},
		{
			name:          "whisper_cpp without model",
			mutate:        func(c *Config) { c.Transcription.Backend = TranscriptionWhisperCpp },
			errorContains: "binary_path",
		},
		{
			name:          "redis without address",
			mutate:        func(c *Config) { c.Lock.Backend = LockRedis },
			errorContains: "redis_addr",
		},
		{
			name:          "bad port",
			mutate:        func(c *Config) { c.Server.Port = "http" },
			errorContains: "port invalid",
		},
		{
			name:          "negative question limit",
			mutate:        func(c *Config) { c.Interview.DefaultQuestionLimit = -1 },
			errorContains: "question limit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}

	assert.NoError(t, Default().Validate())
}
