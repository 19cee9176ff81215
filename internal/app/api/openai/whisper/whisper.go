package whisper

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	openai2 "interview-coach/internal/app/api/openai"
	apperrors "interview-coach/internal/app/errors"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance. An empty
// model means whisper-1.
func NewRemoteTranscriber(client *openai.Client, model, language string, timeout time.Duration) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model, language: language, timeout: timeout}
}

// Transcribe uploads the recording and returns the recognised text. The
// filename only tells the API which container format the bytes are in.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", apperrors.WithCause(apperrors.ErrInvalidInput, apperrors.New("audio is empty"))
	}
	if filename == "" {
		filename = "answer.webm"
	}
	if rt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.timeout)
		defer cancel()
	}

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
		Language: rt.language,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", openai2.WrapFailure(apperrors.ErrTranscriptionFailed, err)
	}

	return strings.TrimSpace(resp.Text), nil
}
