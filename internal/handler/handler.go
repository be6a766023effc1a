package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"appmart/internal/model"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Message: message})
}

// writeDomainError maps a service error onto the HTTP error taxonomy.
// Unexpected errors become a generic 500 so no internal detail leaks.
func writeDomainError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) {
		switch {
		case model.IsValidation(de):
			writeError(w, http.StatusBadRequest, de.Message, logger)
			return
		case de.Code == model.ErrCodeProductNotFound || de.Code == model.ErrCodeOrderNotFound || de.Code == model.ErrCodeUserNotFound:
			writeError(w, http.StatusNotFound, de.Message, logger)
			return
		case de.Code == model.ErrCodeUsernameTaken:
			writeError(w, http.StatusBadRequest, de.Message, logger)
			return
		case de.Code == model.ErrCodeInvalidCredentials:
			writeError(w, http.StatusUnauthorized, de.Message, logger)
			return
		}
	}

	writeError(w, http.StatusInternalServerError, fallback, logger)
}
