// Handlers for browsing the library: directory listings, chapter pages
// and the page files themselves.

package api

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vrsandeep/mango-reader/internal/library"
)

// wildcardPath returns the relative path captured by a trailing "*" route.
// chi matches against the raw path when the client escaped characters such
// as "/", in which case the capture is still escaped.
func wildcardPath(r *http.Request) (string, error) {
	p := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return p, nil
	}
	return url.PathUnescape(p)
}

// handleListManga lists the collections and chapters under ?path=.
func (s *Server) handleListManga(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	root := s.roots.ActiveRoot()

	entries, err := library.ListChildren(root, path)
	if err != nil {
		log.Printf("Failed to list %q under %s: %v", path, root, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to list directory")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"data":         entries,
		"current_path": path,
	})
}

// handleGetChapterImages returns the ordered pages of a chapter and its
// neighbouring chapters.
func (s *Server) handleGetChapterImages(w http.ResponseWriter, r *http.Request) {
	mangaPath, err := wildcardPath(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid chapter path")
		return
	}
	root := s.roots.ActiveRoot()

	listing, err := library.OpenChapter(root, mangaPath)
	if err != nil {
		log.Printf("Failed to read chapter %q under %s: %v", mangaPath, root, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to read chapter")
		return
	}
	RespondWithData(w, http.StatusOK, listing)
}

// handleServeImage streams one page file. The last path segment is the
// filename, everything before it the chapter path.
func (s *Server) handleServeImage(w http.ResponseWriter, r *http.Request) {
	rel, err := wildcardPath(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid image path")
		return
	}
	i := strings.LastIndex(rel, "/")
	if i <= 0 || i == len(rel)-1 {
		RespondWithError(w, http.StatusNotFound, "Image not found")
		return
	}
	filename := rel[i+1:]

	imagePath := library.Resolve(s.roots.ActiveRoot(), rel)
	info, err := os.Stat(imagePath)
	if err != nil || info.IsDir() {
		RespondWithError(w, http.StatusNotFound, "Image not found")
		return
	}
	if !library.IsImage(filename) {
		RespondWithError(w, http.StatusBadRequest, "File is not a supported image format")
		return
	}

	file, err := os.Open(imagePath)
	if err != nil {
		log.Printf("Error opening image %s: %v", imagePath, err)
		RespondWithError(w, http.StatusInternalServerError, "Could not read image")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", library.ContentType(filename))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, filename, info.ModTime(), file)
}
