package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// InputFile writes the given CSV content into a fresh temporary directory and
// returns the path of the file.
func InputFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "balances.csv")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}

// OutputPath returns a path for an output file in a fresh temporary directory.
// The file itself does not exist.
func OutputPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "test.json")
}
