package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI     string
	OpenRouter string
	Gemini     string
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Printf("✅ Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Keys are optional, but a key that is present must look valid.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenRouter: strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		Gemini:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY: %w", err)
		}
	}
	if apiKeys.OpenRouter != "" {
		if err := ValidateAPIKey(apiKeys.OpenRouter, "OpenRouter"); err != nil {
			return nil, fmt.Errorf("invalid OPENROUTER_API_KEY: %w", err)
		}
	}
	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY: %w", err)
		}
	}

	return apiKeys, nil
}

// Available lists the providers that have a key configured
func (k *APIKeys) Available() []string {
	var available []string
	if k.OpenAI != "" {
		available = append(available, "OpenAI")
	}
	if k.OpenRouter != "" {
		available = append(available, "OpenRouter")
	}
	if k.Gemini != "" {
		available = append(available, "Gemini")
	}
	return available
}

// RequireAPIKey fails when the chosen language model provider has no key
func RequireAPIKey(apiKeys *APIKeys, provider string) error {
	key, env := apiKeys.OpenAI, "OPENAI_API_KEY"
	switch provider {
	case ProviderOpenRouter:
		key, env = apiKeys.OpenRouter, "OPENROUTER_API_KEY"
	case ProviderGemini:
		key, env = apiKeys.Gemini, "GEMINI_API_KEY"
	}
	if key != "" {
		return nil
	}

	msg := fmt.Sprintf("no API key configured for llm provider %q - please set %s in environment or .env file", provider, env)
	if available := apiKeys.Available(); len(available) > 0 {
		msg += fmt.Sprintf(" (keys found for %s)", strings.Join(available, ", "))
	}
	return errors.New(msg)
}
