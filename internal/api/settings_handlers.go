// Handlers for reading and updating the reader settings.

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/vrsandeep/mango-reader/internal/config"
)

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	RespondWithData(w, http.StatusOK, s.app.Settings.Get())
}

// handleUpdateConfig applies the fields present in the request body.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var patch config.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := s.app.Settings.Update(patch); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			RespondWithError(w, http.StatusBadRequest, verrs.Error())
			return
		}
		log.Printf("Failed to save reader settings: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	RespondWithMessage(w, http.StatusOK, "Settings saved")
}
