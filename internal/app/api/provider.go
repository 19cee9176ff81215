package api

import (
	"context"

	"interview-coach/internal/app/model"
)

// Transcriber converts recorded speech into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Synthesizer converts text into speech
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*model.AudioClip, error)
}

// Completer sends one system/user exchange to a chat model.
//
// CompleteStructured decodes the reply into out, which must be a pointer to
// a struct. It never returns an error directly; the outcome says which
// attempt produced out, or why both failed.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteStructured(ctx context.Context, system, user, name string, out any) StructuredResult
}
