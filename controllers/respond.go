package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps the service error taxonomy onto HTTP statuses. Validation
// messages pass through verbatim; internal failures get a generic body and
// the cause goes to the log only.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg, internalMsg string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, notFoundMsg)
		return
	}

	logger.Error(internalMsg, "error", err)
	writeMessage(w, http.StatusInternalServerError, internalMsg)
}
