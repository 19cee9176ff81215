package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "interview-coach/internal/app/errors"
)

// fakeS3 answers the handful of S3 calls the audio store makes
type fakeS3 struct {
	mu       sync.Mutex
	buckets  map[string]bool
	objects  []string
	requests []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{buckets: map[string]bool{}}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")

	switch {
	case key == "" && r.Method == http.MethodHead:
		if !f.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case key == "" && r.Method == http.MethodPut:
		_, _ = io.Copy(io.Discard, r.Body)
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		_, _ = io.Copy(io.Discard, r.Body)
		f.objects = append(f.objects, bucket+"/"+key)
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func newTestMinioStore(t *testing.T, fake *fakeS3) *MinioAudioStore {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	store, err := NewMinioAudioStore(context.Background(), MinioOptions{
		Endpoint:  strings.TrimPrefix(server.URL, "http://"),
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "recordings",
		Region:    "us-east-1",
		URLExpiry: time.Hour,
	})
	require.NoError(t, err)
	return store
}

func TestNewMinioAudioStore_CreatesBucket(t *testing.T) {
	fake := newFakeS3()

	newTestMinioStore(t, fake)

	assert.True(t, fake.buckets["recordings"])
	assert.Contains(t, fake.requests, "HEAD /recordings/")
}

func TestNewMinioAudioStore_ExistingBucket(t *testing.T) {
	fake := newFakeS3()
	fake.buckets["recordings"] = true

	newTestMinioStore(t, fake)

	assert.NotContains(t, fake.requests, "PUT /recordings/")
}

func TestMinioAudioStore_Save(t *testing.T) {
	fake := newFakeS3()
	store := newTestMinioStore(t, fake)

	link, err := store.Save(context.Background(), "session-1/q2", mp3("ID3"))

	require.NoError(t, err)
	assert.Contains(t, link, "/recordings/session-1/q2.mp3")
	assert.Contains(t, link, "X-Amz-Expires=3600")
	assert.Equal(t, []string{"recordings/session-1/q2.mp3"}, fake.objects)
}

func TestMinioAudioStore_SaveRejectsBadNames(t *testing.T) {
	store := newTestMinioStore(t, newFakeS3())

	_, err := store.Save(context.Background(), "../escape", mp3("x"))

	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}
