// Handlers for the reading history.

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/vrsandeep/mango-reader/internal/store"
)

type addHistoryRequest struct {
	MangaPath   string `json:"manga_path"`
	ChapterName string `json:"chapter_name"`
	ImageIndex  int    `json:"image_index"`
	TotalImages int    `json:"total_images"`
}

func (p addHistoryRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.MangaPath, validation.Required),
		validation.Field(&p.ChapterName, validation.Required),
		validation.Field(&p.TotalImages, validation.Required, validation.Min(1)),
		validation.Field(&p.ImageIndex, validation.Min(0), validation.Max(p.TotalImages-1)),
	)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.ListHistory()
	if err != nil {
		log.Printf("Failed to load reading history: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	RespondWithData(w, http.StatusOK, records)
}

// handleAddHistory saves the reading position of a chapter.
func (s *Server) handleAddHistory(w http.ResponseWriter, r *http.Request) {
	var payload addHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := payload.Validate(); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := s.history.AddHistory(payload.MangaPath, payload.ChapterName, payload.ImageIndex, payload.TotalImages)
	if err != nil {
		log.Printf("Failed to save progress for %s: %v", payload.MangaPath, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}
	RespondWithMessage(w, http.StatusOK, "Reading progress saved")
}

// handleDeleteHistory removes the record at the given position of the
// newest-first history list.
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}

	if err := s.history.DeleteHistoryAt(index); err != nil {
		if errors.Is(err, store.ErrHistoryNotFound) {
			RespondWithError(w, http.StatusNotFound, "Record not found")
			return
		}
		log.Printf("Failed to delete history record %d: %v", index, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to delete record")
		return
	}
	RespondWithMessage(w, http.StatusOK, "Record deleted")
}
