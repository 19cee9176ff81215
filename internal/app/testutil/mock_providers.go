package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"

	"interview-coach/internal/app/api"
	"interview-coach/internal/app/model"
)

// MockCompleter is a mock implementation of api.Completer.
//
// CompleteStructured expectations return (content string, result
// api.StructuredResult); content is decoded into out when the outcome
// is not OutcomeFailed.
type MockCompleter struct {
	mock.Mock
}

func NewMockCompleter(t *testing.T) *MockCompleter {
	m := &MockCompleter{}
	m.Test(t)
	return m
}

func (m *MockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

func (m *MockCompleter) CompleteStructured(ctx context.Context, system, user, name string, out any) api.StructuredResult {
	args := m.Called(ctx, system, user, name, out)
	res := args.Get(1).(api.StructuredResult)
	if res.OK() {
		if err := json.Unmarshal([]byte(args.String(0)), out); err != nil {
			return api.StructuredResult{Outcome: api.OutcomeFailed, Err: err}
		}
	}
	return res
}

// MockTranscriber is a mock implementation of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	args := m.Called(ctx, audio, filename)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a mock implementation of api.Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func NewMockSynthesizer(t *testing.T) *MockSynthesizer {
	m := &MockSynthesizer{}
	m.Test(t)
	return m
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) (*model.AudioClip, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AudioClip), args.Error(1)
}

// MockAudioStore is a mock implementation of storage.AudioStore
type MockAudioStore struct {
	mock.Mock
}

func NewMockAudioStore(t *testing.T) *MockAudioStore {
	m := &MockAudioStore{}
	m.Test(t)
	return m
}

func (m *MockAudioStore) Save(ctx context.Context, name string, clip *model.AudioClip) (string, error) {
	args := m.Called(ctx, name, clip)
	return args.String(0), args.Error(1)
}
