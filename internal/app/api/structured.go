package api

import (
	"encoding/json"
	"reflect"
	"strings"

	apperrors "interview-coach/internal/app/errors"
)

// Outcome tells which attempt of a structured completion succeeded
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeStructured
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStructured:
		return "structured"
	case OutcomeFallback:
		return "fallback"
	default:
		return "failed"
	}
}

// StructuredResult reports how a structured completion went. StructuredErr
// is the reason the first attempt was abandoned, if it was.
type StructuredResult struct {
	Outcome       Outcome
	Err           error
	StructuredErr error
}

// OK reports whether out was populated
func (r StructuredResult) OK() bool {
	return r.Outcome != OutcomeFailed
}

// Attempt performs one completion and returns the raw reply
type Attempt func() (string, error)

// TwoAttempt runs the schema-constrained attempt and, when it fails, the
// plain JSON attempt. A rate-limited first attempt is not retried.
func TwoAttempt(structured, fallback Attempt, out any) StructuredResult {
	content, err := structured()
	if err == nil {
		err = DecodeJSON(content, out)
		if err == nil {
			return StructuredResult{Outcome: OutcomeStructured}
		}
	}
	if apperrors.IsKind(err, apperrors.KindProviderRateLimited) {
		return StructuredResult{Outcome: OutcomeFailed, Err: err, StructuredErr: err}
	}

	structuredErr := err
	content, err = fallback()
	if err == nil {
		err = DecodeJSON(content, out)
		if err == nil {
			return StructuredResult{Outcome: OutcomeFallback, StructuredErr: structuredErr}
		}
	}
	return StructuredResult{Outcome: OutcomeFailed, Err: err, StructuredErr: structuredErr}
}

// DecodeJSON parses a model reply into out. Markdown code fences and text
// around the outermost JSON object are ignored. out is left untouched when
// the reply does not decode.
func DecodeJSON(content string, out any) error {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}
	if content == "" {
		return apperrors.WithCause(apperrors.ErrResponseInvalid, apperrors.New("empty reply"))
	}

	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return apperrors.WithCause(apperrors.ErrResponseInvalid, json.Unmarshal([]byte(content), out))
	}
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal([]byte(content), fresh.Interface()); err != nil {
		return apperrors.WithCause(apperrors.ErrResponseInvalid, err)
	}
	target.Elem().Set(fresh.Elem())
	return nil
}
