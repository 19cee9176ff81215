package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds a client for the OpenAI API or any OpenAI-compatible
// endpoint such as OpenRouter. An empty baseURL keeps the OpenAI default.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
