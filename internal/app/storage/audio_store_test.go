package storage

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

func mp3(data string) *model.AudioClip {
	return &model.AudioClip{Data: []byte(data), ContentType: "audio/mpeg", Extension: ".mp3"}
}

func TestLocalAudioStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")
	store, err := NewLocalAudioStore(dir, "/audio/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "session-1/q2", mp3("ID3"))

	require.NoError(t, err)
	assert.Equal(t, "/audio/session-1/q2.mp3", url)
	data, err := os.ReadFile(filepath.Join(dir, "session-1", "q2.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "ID3", string(data))
}

func TestLocalAudioStore_RejectsBadNames(t *testing.T) {
	store, err := NewLocalAudioStore(t.TempDir(), "/audio")
	require.NoError(t, err)

	for _, name := range []string{"", "../escape", "a/../../b", "/abs"} {
		_, err := store.Save(context.Background(), name, mp3("x"))
		assert.True(t, stderrors.Is(err, apperrors.ErrInvalidInput), "name %q", name)
	}
}

func TestLocalAudioStore_EmptyClip(t *testing.T) {
	store, err := NewLocalAudioStore(t.TempDir(), "/audio")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "x", &model.AudioClip{})
	assert.True(t, stderrors.Is(err, apperrors.ErrSynthesisFailed))
}

func TestMinioAudioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_TEST_ENDPOINT not set")
	}

	store, err := NewMinioAudioStore(context.Background(), MinioOptions{
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "interview-audio-test",
	})
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "session-1/q1", mp3("ID3"))
	require.NoError(t, err)
	assert.Contains(t, url, "session-1/q1.mp3")
}
