package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/mango-reader/internal/config"
	"github.com/vrsandeep/mango-reader/internal/models"
)

func makeLibrary(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}
	return root
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestLsCmd(t *testing.T) {
	root := makeLibrary(t, "Series/ch1/1.jpg", "Oneshot/1.jpg")

	var entries []models.Entry
	require.NoError(t, json.Unmarshal([]byte(run(t, "ls", "--root", root, "--json")), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Series", entries[0].Name)
	assert.Equal(t, "Oneshot", entries[1].Name)

	out := run(t, "ls", "Series", "--root", root)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "Series/ch1")
}

func TestImagesCmd(t *testing.T) {
	root := makeLibrary(t, "S/ch1/10.jpg", "S/ch1/9.jpg", "S/ch1/readme.txt")

	out := run(t, "images", "S/ch1", "--root", root)
	assert.Equal(t, []string{"9.jpg", "10.jpg"}, strings.Fields(out))
}

func TestNeighborsCmd(t *testing.T) {
	root := makeLibrary(t, "S/ch1/1.jpg", "S/ch2/1.jpg")

	out := run(t, "neighbors", "S/ch1", "--root", root)
	assert.Equal(t, "previous: -\nnext: S/ch2\n", out)
}

func TestRootsAndUseCmd(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "manga_config.json")

	out := run(t, "use", "/srv/other", "--settings", settingsPath)
	assert.Contains(t, out, "/srv/other")

	out = run(t, "roots", "--settings", settingsPath)
	assert.Equal(t, "  ./manga\n* /srv/other\n", out)

	s, err := config.NewSettingsStore(settingsPath, "./ignored")
	require.NoError(t, err)
	assert.Equal(t, "/srv/other", s.ActiveRoot())
}
