// Package testutil provides helpers shared by the integration and e2e
// test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the repository root, two levels above the test
// package directory.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// SchemaFixture returns the absolute path of a file under
// fixtures/schemas and fails the test if it does not exist.
func SchemaFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "fixtures", "schemas", name)
	require.FileExists(t, path)
	return path
}
