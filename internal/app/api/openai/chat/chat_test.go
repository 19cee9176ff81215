package chat

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-coach/internal/app/api"
	apperrors "interview-coach/internal/app/errors"
)

type scoreCard struct {
	Score int    `json:"score"`
	Note  string `json:"note"`
}

// chatServer answers each request with the next scripted (status, body)
// pair and records the response_format type of every request.
type chatServer struct {
	mu      sync.Mutex
	replies []reply
	formats []string
}

type reply struct {
	status  int
	content string
}

func (s *chatServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req openai.ChatCompletionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	format := ""
	if req.ResponseFormat != nil {
		format = string(req.ResponseFormat.Type)
	}
	s.formats = append(s.formats, format)
	next := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if next.status != http.StatusOK {
		w.WriteHeader(next.status)
		fmt.Fprintf(w, `{"error": {"message": %q, "type": "error"}}`, next.content)
		return
	}
	body, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": next.content},
		}},
	})
	w.Write(body)
}

func newTestClient(t *testing.T, replies ...reply) (*Client, *chatServer) {
	t.Helper()
	srv := &chatServer{replies: replies}
	server := httptest.NewServer(srv)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	return NewClient(openai.NewClientWithConfig(config), "test-model", 5*time.Second), srv
}

func TestComplete(t *testing.T) {
	client, srv := newTestClient(t, reply{http.StatusOK, "  Tell me about yourself.  "})

	text, err := client.Complete(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "Tell me about yourself.", text)
	assert.Equal(t, []string{""}, srv.formats)
}

func TestComplete_RateLimited(t *testing.T) {
	client, _ := newTestClient(t, reply{http.StatusTooManyRequests, "Rate limit exceeded"})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.True(t, stderrors.Is(err, apperrors.ErrProviderRateLimited))
}

func TestComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	client := NewClient(openai.NewClientWithConfig(config), "test-model", 50*time.Millisecond)

	_, err := client.Complete(context.Background(), "system", "user")

	assert.Equal(t, apperrors.KindProviderTimeout, apperrors.KindOf(err))
}

func TestCompleteStructured(t *testing.T) {
	t.Run("schema mode", func(t *testing.T) {
		client, srv := newTestClient(t, reply{http.StatusOK, `{"score": 90, "note": "sharp"}`})

		var card scoreCard
		res := client.CompleteStructured(context.Background(), "system", "user", "score_card", &card)

		assert.Equal(t, api.OutcomeStructured, res.Outcome)
		assert.Equal(t, 90, card.Score)
		assert.Equal(t, []string{"json_schema"}, srv.formats)
	})

	t.Run("falls back to json mode", func(t *testing.T) {
		client, srv := newTestClient(t,
			reply{http.StatusBadRequest, "response_format json_schema is not supported"},
			reply{http.StatusOK, `{"score": 55, "note": "ok"}`},
		)

		var card scoreCard
		res := client.CompleteStructured(context.Background(), "system", "user", "score_card", &card)

		assert.Equal(t, api.OutcomeFallback, res.Outcome)
		assert.Equal(t, 55, card.Score)
		assert.Equal(t, []string{"json_schema", "json_object"}, srv.formats)
	})

	t.Run("rate limit skips fallback", func(t *testing.T) {
		client, srv := newTestClient(t, reply{http.StatusTooManyRequests, "Rate limit exceeded"})

		var card scoreCard
		res := client.CompleteStructured(context.Background(), "system", "user", "score_card", &card)

		assert.Equal(t, api.OutcomeFailed, res.Outcome)
		assert.True(t, stderrors.Is(res.Err, apperrors.ErrProviderRateLimited))
		assert.Len(t, srv.formats, 1)
	})
}
