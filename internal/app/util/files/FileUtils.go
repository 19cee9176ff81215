package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadOutputFile reads a text file produced by an external tool and trims
// surrounding whitespace
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

// WriteTempFile writes data into a fresh directory under dir and returns
// the file path together with a cleanup function removing the directory.
// Only the base name of filename is used.
func WriteTempFile(dir, filename string, data []byte) (string, func(), error) {
	workDir, err := os.MkdirTemp(dir, "coach-")
	if err != nil {
		return "", func() {}, fmt.Errorf("create work directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(workDir) }

	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "input"
	}
	path := filepath.Join(workDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("write %s: %w", path, err)
	}
	return path, cleanup, nil
}
