package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name          string
		openaiKey     string
		openrouterKey string
		geminiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:      "valid OpenAI key",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:          "valid OpenRouter key",
			openrouterKey: "sk-or-v1-1234567890abcdef1234567890",
		},
		{
			name:      "valid Gemini key",
			geminiKey: "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY",
		},
		{
			name:          "OpenRouter key too short",
			openrouterKey: "sk-or-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Gemini key format",
			geminiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY",
		},
		{
			name: "empty keys are allowed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)
			t.Setenv("OPENROUTER_API_KEY", tc.openrouterKey)
			t.Setenv("GEMINI_API_KEY", tc.geminiKey)

			apiKeys, err := GetAPIKeys()

			if tc.expectError {
				assert.Error(t, err)
				if tc.errorContains != "" {
					assert.Contains(t, err.Error(), tc.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.openaiKey, apiKeys.OpenAI)
				assert.Equal(t, tc.openrouterKey, apiKeys.OpenRouter)
				assert.Equal(t, tc.geminiKey, apiKeys.Gemini)
			}
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	testCases := []struct {
		name          string
		apiKeys       *APIKeys
		provider      string
		errorContains []string
	}{
		{
			name:     "OpenAI key for openai",
			apiKeys:  &APIKeys{OpenAI: "sk-1234567890abcdef1234567890abcdef"},
			provider: ProviderOpenAI,
		},
		{
			name:     "OpenRouter key for openrouter",
			apiKeys:  &APIKeys{OpenRouter: "sk-or-v1-1234567890abcdef1234567890"},
			provider: ProviderOpenRouter,
		},
		{
			name:          "no keys",
			apiKeys:       &APIKeys{},
			provider:      ProviderOpenAI,
			errorContains: []string{"no API key", "OPENAI_API_KEY"},
		},
		{
			name:          "key for another provider",
			apiKeys:       &APIKeys{OpenAI: "sk-1234567890abcdef1234567890abcdef"},
			provider:      ProviderGemini,
			errorContains: []string{"GEMINI_API_KEY", "keys found for OpenAI"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireAPIKey(tc.apiKeys, tc.provider)
			if len(tc.errorContains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.errorContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
