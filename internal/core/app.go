package core

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/vrsandeep/mango-reader/internal/assets"
	"github.com/vrsandeep/mango-reader/internal/config"
	"github.com/vrsandeep/mango-reader/internal/db"
)

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	Config   *config.Config
	DB       *sql.DB
	Settings *config.SettingsStore
	Version  string
}

// New sets up and returns a new App instance. It handles loading the
// configuration and reader settings, initializing the database connection,
// and running migrations.
func New() (*App, error) {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	settings, err := config.NewSettingsStore(cfg.Settings.Path, cfg.Library.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load reader settings: %w", err)
	}

	// Initialize the database connection
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	if err := db.RunMigrations(database, assets.MigrationsFS); err != nil {
		// We can't proceed without a valid database schema.
		// Close the DB connection before failing.
		database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	log.Println("Core application setup complete.")
	return &App{
		Config:   cfg,
		DB:       database,
		Settings: settings,
		Version:  "dev",
	}, nil
}

// Close gracefully closes the application's resources, like the DB connection.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
