// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"io"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vrsandeep/mango-reader/internal/assets"
	"github.com/vrsandeep/mango-reader/internal/core"
	"github.com/vrsandeep/mango-reader/internal/library"
	"github.com/vrsandeep/mango-reader/internal/store"
)

// Server holds the dependencies for our API.
type Server struct {
	app     *core.App
	history *store.HistoryStore
	roots   library.RootSource
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{
		app:     app,
		history: store.NewHistoryStore(app.DB),
		roots:   app.Settings, // Use the settings file by default
	}
}

// SetRootSource replaces where the active root is read from, for tests.
func (s *Server) SetRootSource(roots library.RootSource) {
	s.roots = roots
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		// Library browsing
		r.Get("/manga", s.handleListManga)
		r.Get("/manga/*", s.handleGetChapterImages)
		r.Get("/image/*", s.handleServeImage)

		// Reader settings
		r.Get("/config", s.handleGetConfig)
		r.Post("/config", s.handleUpdateConfig)

		// Reading history
		r.Get("/history", s.handleListHistory)
		r.Post("/history", s.handleAddHistory)
		r.Delete("/history/{index}", s.handleDeleteHistory)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			if err := s.history.Ping(); err != nil {
				RespondWithError(w, http.StatusServiceUnavailable, "Database connection failed")
				return
			}
			RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.app.Version})
		})
	})

	// Frontend Routes
	webSubFS, err := fs.Sub(assets.WebFS, "web")
	if err != nil {
		log.Fatalf("Failed to create web sub-filesystem: %v", err)
	}

	// This handler serves a specific HTML file from the embedded FS.
	serveHTML := func(fileName string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			file, err := webSubFS.Open(fileName)
			if err != nil {
				http.NotFound(w, r)
				log.Printf("Error serving embedded file %s: %v", fileName, err)
				return
			}
			defer file.Close()
			http.ServeContent(w, r, fileName, time.Time{}, file.(io.ReadSeeker))
		}
	}

	r.Get("/", serveHTML("index.html"))

	return r
}
