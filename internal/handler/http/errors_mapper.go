package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	// a duplicate email is a client mistake, not a state conflict
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrStoreUnavailable:   http.StatusServiceUnavailable,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the uniform JSON error body with the mapped
// status code. Internal errors are masked behind the generic status text so
// that store details never leak to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}

// writeMappedError is writeError with the detail text replaced: handlers use
// it when the sentinel's own message is too low-level for the client.
func writeMappedError(w http.ResponseWriter, err error, detail string) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusFromError(err))
}
