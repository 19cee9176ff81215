package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// AudioStore persists synthesized speech and returns a URL clients can fetch
type AudioStore interface {
	Save(ctx context.Context, name string, clip *model.AudioClip) (string, error)
}

// LocalAudioStore writes clips under a directory that the HTTP server
// exposes at urlPath
type LocalAudioStore struct {
	dir     string
	urlPath string
}

// NewLocalAudioStore creates the directory if needed
func NewLocalAudioStore(dir, urlPath string) (*LocalAudioStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio directory: %w", err)
	}
	return &LocalAudioStore{dir: dir, urlPath: strings.TrimSuffix(urlPath, "/")}, nil
}

// Dir is the directory served as static files
func (s *LocalAudioStore) Dir() string {
	return s.dir
}

// Save writes the clip to <dir>/<name><ext>
func (s *LocalAudioStore) Save(ctx context.Context, name string, clip *model.AudioClip) (string, error) {
	key, err := objectKey(name, clip)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", apperrors.WithCause(apperrors.ErrSynthesisFailed, err)
	}

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", apperrors.WithCause(apperrors.ErrSynthesisFailed, err)
	}
	if err := os.WriteFile(target, clip.Data, 0o644); err != nil {
		return "", apperrors.WithCause(apperrors.ErrSynthesisFailed, err)
	}
	return s.urlPath + "/" + key, nil
}

// objectKey validates name and appends the clip's extension. Names are
// slash separated and may not escape the store root.
func objectKey(name string, clip *model.AudioClip) (string, error) {
	if clip == nil || len(clip.Data) == 0 {
		return "", apperrors.WithCause(apperrors.ErrSynthesisFailed, apperrors.New("empty audio clip"))
	}
	clean := path.Clean("/" + name)[1:]
	if clean == "" || clean != name {
		return "", apperrors.InvalidField("audio name", fmt.Sprintf("%q is not a clean relative path", name))
	}
	return clean + clip.Extension, nil
}
