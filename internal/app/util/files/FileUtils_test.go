package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := WriteTempFile(t.TempDir(), "../../etc/answer.webm", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "answer.webm", filepath.Base(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	cleanup()
	_, err = os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(err))
}

func TestReadOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  hello world \n"), 0o644))

	text, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	_, err = ReadOutputFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
