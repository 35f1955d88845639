package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile writes content to name inside a per-test temporary directory and returns its path.
func CreateTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

// ReadTestFile returns the content of path and fails the test when it cannot be read.
func ReadTestFile(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(filepath.Clean(path))
	require.NoError(t, err)
	return content
}
