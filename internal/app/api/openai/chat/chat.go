package chat

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"interview-coach/internal/app/api"
	openai2 "interview-coach/internal/app/api/openai"
	apperrors "interview-coach/internal/app/errors"
)

// Client is a Completer backed by an OpenAI-compatible chat endpoint
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a chat client for the given model. A zero timeout
// leaves deadlines to the caller's context.
func NewClient(client *openai.Client, model string, timeout time.Duration) *Client {
	return &Client{client: client, model: model, timeout: timeout}
}

// Complete returns the assistant's reply to a single system/user exchange
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return c.create(ctx, c.request(system, user, nil))
}

// CompleteStructured asks for a reply matching the JSON schema of out. If
// the endpoint rejects structured output or replies with something that
// does not decode, it retries once in plain JSON mode.
func (c *Client) CompleteStructured(ctx context.Context, system, user, name string, out any) api.StructuredResult {
	structured := func() (string, error) {
		schema, err := jsonschema.GenerateSchemaForType(reflect.ValueOf(out).Elem().Interface())
		if err != nil {
			return "", apperrors.Wrap(err, "generate response schema")
		}
		return c.create(ctx, c.request(system, user, &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: schema,
				Strict: true,
			},
		}))
	}
	fallback := func() (string, error) {
		return c.create(ctx, c.request(system, user, &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}))
	}
	return api.TwoAttempt(structured, fallback, out)
}

func (c *Client) request(system, user string, format *openai.ChatCompletionResponseFormat) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: format,
	}
}

func (c *Client) create(ctx context.Context, request openai.ChatCompletionRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", openai2.ClassifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.WithCause(apperrors.ErrResponseInvalid, apperrors.New("no choices returned"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
