package speech

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	openai2 "interview-coach/internal/app/api/openai"
	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// Synthesizer turns text into mp3 speech with the OpenAI TTS endpoint
type Synthesizer struct {
	client  *openai.Client
	model   openai.SpeechModel
	voice   openai.SpeechVoice
	timeout time.Duration
}

// NewSynthesizer creates a new Synthesizer. Empty model and voice fall
// back to tts-1 and onyx.
func NewSynthesizer(client *openai.Client, speechModel, voice string, timeout time.Duration) *Synthesizer {
	s := &Synthesizer{
		client:  client,
		model:   openai.TTSModel1,
		voice:   openai.VoiceOnyx,
		timeout: timeout,
	}
	if speechModel != "" {
		s.model = openai.SpeechModel(speechModel)
	}
	if voice != "" {
		s.voice = openai.SpeechVoice(voice)
	}
	return s
}

// Synthesize returns the spoken rendition of text
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*model.AudioClip, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.WithCause(apperrors.ErrInvalidInput, apperrors.New("text is empty"))
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, openai2.WrapFailure(apperrors.ErrSynthesisFailed, err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrSynthesisFailed, err)
	}
	if len(data) == 0 {
		return nil, apperrors.WithCause(apperrors.ErrSynthesisFailed, apperrors.New("empty audio returned"))
	}

	return &model.AudioClip{Data: data, ContentType: "audio/mpeg", Extension: ".mp3"}, nil
}
