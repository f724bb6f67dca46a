// internal/controller/respond.go
package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
)

// Every response carries the same envelope; status lives in the HTTP code.
type envelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func respondSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Data: data, Message: message})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Data: nil, Message: message})
}

// respondError maps the error taxonomy onto status codes. Anything outside
// the taxonomy is an internal failure: the caller sees only the generic
// message and the detail stays in the server log.
func respondError(ctx context.Context, w http.ResponseWriter, err error, internalMessage string) {
	switch {
	case appErrors.IsValidation(err):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case appErrors.IsNotFound(err):
		respondMessage(w, http.StatusNotFound, err.Error())
	case appErrors.IsConflict(err):
		respondMessage(w, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(ctx, internalMessage, "error", err)
		respondMessage(w, http.StatusInternalServerError, internalMessage)
	}
}
