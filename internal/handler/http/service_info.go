package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// root greets unauthenticated callers so that hitting the bare host is
// distinguishable from a routing mistake.
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "notes keeper API, see /health",
	}, http.StatusOK)
}

// health reports liveness and the storage mode the process settled on at
// startup. It stays cheap on purpose: no store round-trip, just the binding
// decision taken once by the connection supervisor.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	storage := "mongodb"
	if h.degraded {
		storage = "in-memory"
	}

	utils.WriteJSON(w, map[string]string{
		"status":  "healthy",
		"storage": storage,
	}, http.StatusOK)
}
