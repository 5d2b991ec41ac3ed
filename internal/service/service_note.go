package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService is the concrete implementation of NoteService.
//
// Ownership is not re-checked here: every call carries the userID of the
// already-authenticated caller and the repository scopes each query by it,
// so a foreign note surfaces as store.ErrNoteNotFound.
type noteService struct {
	noteRepository store.NoteRepository
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID.
//
// The note id and both timestamps are server-generated; the title must be
// non-empty, the content may be empty.
//
// Returns the persisted note or:
//   - ErrInvalidDataProvided if the title is empty.
//   - A wrapped storage error if persistence fails.
func (n *noteService) CreateNote(ctx context.Context, userID string, create models.NoteCreateRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if create.NoteTitle == "" {
		log.Error().Str("user_id", userID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	note := models.Note{
		NoteID:      n.uuid.Generate(),
		UserID:      userID,
		NoteTitle:   create.NoteTitle,
		NoteContent: create.NoteContent,
		CreatedOn:   now,
		LastUpdate:  now,
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// ListNotes returns every note owned by userID, newest first. An account
// without notes yields an empty slice, not an error.
func (n *noteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.FindNotesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("notes listing ended with error")
		return nil, fmt.Errorf("notes listing ended with error: %w", err)
	}

	return notes, nil
}

// GetNote retrieves a single note by id, scoped to userID.
func (n *noteService) GetNote(ctx context.Context, noteID, userID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.FindNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Str("user_id", userID).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// UpdateNote merges the provided fields into an existing note and returns the
// stored result. An update that names no fields is a valid no-op merge that
// still bumps last_update.
//
// Returns the merged note or:
//   - ErrInvalidDataProvided if a new title is provided but empty.
//   - A wrapped store.ErrNoteNotFound if the note is missing or foreign.
func (n *noteService) UpdateNote(ctx context.Context, noteID, userID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.NoteTitle != nil && *update.NoteTitle == "" {
		log.Error().Str("note_id", noteID).Msg("invalid note update provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	updatedNote, err := n.noteRepository.UpdateNote(ctx, noteID, userID, update)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Str("user_id", userID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote removes a single note by id, scoped to userID.
func (n *noteService) DeleteNote(ctx context.Context, noteID, userID string) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Str("note_id", noteID).Str("user_id", userID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
