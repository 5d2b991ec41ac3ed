package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeMappedError(w, ErrEmptyAuthorizationHeader, "not authenticated")
		return
	}

	var create models.NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMappedError(w, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	createdNote, err := h.services.NoteService.CreateNote(ctx, user.UserID, create)
	if err != nil {
		log.Err(err).Msg("note creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdNote, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeMappedError(w, ErrEmptyAuthorizationHeader, "not authenticated")
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("notes listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeMappedError(w, ErrEmptyAuthorizationHeader, "not authenticated")
		return
	}

	noteID := chi.URLParam(r, "noteID")
	note, err := h.services.NoteService.GetNote(ctx, noteID, user.UserID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Msg("note lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeMappedError(w, ErrEmptyAuthorizationHeader, "not authenticated")
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMappedError(w, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	noteID := chi.URLParam(r, "noteID")
	updatedNote, err := h.services.NoteService.UpdateNote(ctx, noteID, user.UserID, update)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Msg("note update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeMappedError(w, ErrEmptyAuthorizationHeader, "not authenticated")
		return
	}

	noteID := chi.URLParam(r, "noteID")
	if err := h.services.NoteService.DeleteNote(ctx, noteID, user.UserID); err != nil {
		log.Err(err).Str("note_id", noteID).Msg("note deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
