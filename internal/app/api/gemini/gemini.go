package gemini

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"interview-coach/internal/app/api"
	apperrors "interview-coach/internal/app/errors"
)

// Client is a Completer backed by the Gemini API
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a Gemini completer. baseURL is only set in tests.
func NewClient(ctx context.Context, apiKey, model, baseURL string, timeout time.Duration) (*Client, error) {
	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrProviderNotConfigured, err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Complete returns the model's reply to a single system/user exchange
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return c.generate(ctx, system, user, "")
}

// CompleteStructured first asks for a JSON response, then retries once in
// plain text mode and extracts the JSON object from the reply.
func (c *Client) CompleteStructured(ctx context.Context, system, user, name string, out any) api.StructuredResult {
	structured := func() (string, error) {
		return c.generate(ctx, system, user, "application/json")
	}
	fallback := func() (string, error) {
		return c.generate(ctx, system, user+"\n\nRespond with a single JSON object and nothing else.", "")
	}
	return api.TwoAttempt(structured, fallback, out)
}

func (c *Client) generate(ctx context.Context, system, user, mimeType string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  mimeType,
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), config)
	if err != nil {
		return "", ClassifyError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", apperrors.WithCause(apperrors.ErrResponseInvalid, apperrors.New("empty reply"))
	}
	return text, nil
}

// ClassifyError maps a Gemini API error onto the provider error kinds
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return apperrors.WithCause(apperrors.ErrProviderTimeout, err)
	}

	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case stderrors.As(err, &apiErr):
		code = apiErr.Code
	case stderrors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}

	switch code {
	case http.StatusTooManyRequests:
		return apperrors.WithCause(apperrors.ErrProviderRateLimited, err)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return apperrors.WithCause(apperrors.ErrProviderTimeout, err)
	}
	return apperrors.WithCause(apperrors.ErrProviderUnavailable, err)
}
