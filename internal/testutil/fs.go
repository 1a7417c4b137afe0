// Filesystem fixtures for tests that need a library on disk.

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestLibrary builds a library under a fresh temp directory and
// returns its path. Each entry is a "/" separated path relative to the
// root; entries ending in "/" become empty directories, all others become
// small files.
func CreateTestLibrary(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("Failed to create directory '%s': %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create parent of '%s': %v", p, err)
		}
		if err := os.WriteFile(full, []byte("page:"+p), 0644); err != nil {
			t.Fatalf("Failed to create file '%s': %v", p, err)
		}
	}
	return root
}
