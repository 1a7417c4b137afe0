// A shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/vrsandeep/mango-reader/internal/api"
	"github.com/vrsandeep/mango-reader/internal/config"
	"github.com/vrsandeep/mango-reader/internal/core"
)

// SetupTestApp builds a core.App backed by an in-memory database and a
// settings file in a temp directory, rooted at libraryRoot.
func SetupTestApp(t *testing.T, libraryRoot string) *core.App {
	t.Helper()
	db := SetupTestDB(t)

	cfg := &config.Config{
		Port:     15000,
		Library:  config.LibraryConfig{Path: libraryRoot},
		Settings: config.SettingsConfig{Path: filepath.Join(t.TempDir(), "manga_config.json")},
	}
	settings, err := config.NewSettingsStore(cfg.Settings.Path, libraryRoot)
	if err != nil {
		t.Fatalf("Failed to create settings store: %v", err)
	}
	return &core.App{
		Config:   cfg,
		DB:       db,
		Settings: settings,
		Version:  "test",
	}
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T, libraryRoot string) (*api.Server, *core.App) {
	t.Helper()
	app := SetupTestApp(t, libraryRoot)
	return api.NewServer(app), app
}
