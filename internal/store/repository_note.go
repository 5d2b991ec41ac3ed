package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the implementation of [NoteRepository] over whichever
// [Database] was bound at startup.
//
// Every method that targets an existing note filters by both note_id and
// user_id. A note owned by someone else therefore behaves exactly like a
// missing note.
type noteRepository struct {
	logger *logger.Logger
	notes  Collection
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database and logger.
func NewNoteRepository(db Database, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		notes:  db.Collection(models.Note{}.CollectionName()),
		logger: logger,
	}
}

// CreateNote persists a new note record and returns it unchanged on success.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := r.notes.InsertOne(ctx, note); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: note insert failed")
		return models.Note{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return note, nil
}

// FindNotesByUser lists all notes owned by userID, newest first
// (created_on descending).
func (r *noteRepository) FindNotesByUser(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes := make([]models.Note, 0)
	opts := &FindOptions{SortField: "created_on", SortDesc: true}
	if err := r.notes.Find(ctx, Filter{"user_id": userID}, opts, &notes); err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByUser").Msg("error: notes listing failed")
		return nil, fmt.Errorf("unexpected store error: %w", err)
	}

	return notes, nil
}

// FindNote retrieves one note by id, scoped to the owning user.
//
// Error handling:
//   - no matching record (including a foreign owner) → [ErrNoteNotFound].
//   - backend unreachable → wrapped [ErrStoreUnavailable].
func (r *noteRepository) FindNote(ctx context.Context, noteID, userID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var foundNote models.Note
	err := r.notes.FindOne(ctx, Filter{"note_id": noteID, "user_id": userID}, &foundNote)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNote").Msg("error: note lookup failed")
		return models.Note{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return foundNote, nil
}

// UpdateNote merges the non-nil fields of update into the note and bumps
// last_update. The note must exist and belong to userID; the merged record
// is re-read and returned so the caller sees the canonical stored state.
func (r *noteRepository) UpdateNote(ctx context.Context, noteID, userID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	// existence (and ownership) check first: UpdateOne reporting zero
	// modifications cannot distinguish a missing note from a no-op merge
	if _, err := r.FindNote(ctx, noteID, userID); err != nil {
		return models.Note{}, err
	}

	set := Fields{"last_update": time.Now().UTC()}
	if update.NoteTitle != nil {
		set["note_title"] = *update.NoteTitle
	}
	if update.NoteContent != nil {
		set["note_content"] = *update.NoteContent
	}

	filter := Filter{"note_id": noteID, "user_id": userID}
	if _, err := r.notes.UpdateOne(ctx, filter, set); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: note update failed")
		return models.Note{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return r.FindNote(ctx, noteID, userID)
}

// DeleteNote removes one note by id, scoped to the owning user.
//
// Error handling:
//   - nothing deleted (missing or foreign note) → [ErrNoteNotFound].
//   - backend unreachable → wrapped [ErrStoreUnavailable].
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID string) error {
	log := logger.FromContext(ctx)

	deleted, err := r.notes.DeleteOne(ctx, Filter{"note_id": noteID, "user_id": userID})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: note delete failed")
		return fmt.Errorf("unexpected store error: %w", err)
	}

	if deleted == 0 {
		return ErrNoteNotFound
	}

	return nil
}
