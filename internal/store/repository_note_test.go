package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNote(id, userID, title string, createdOn time.Time) models.Note {
	return models.Note{
		NoteID:      id,
		UserID:      userID,
		NoteTitle:   title,
		NoteContent: "content of " + title,
		CreatedOn:   createdOn,
		LastUpdate:  createdOn,
	}
}

func strPtr(s string) *string { return &s }

func TestNoteRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	createdOn := time.Now().UTC()
	created, err := repo.CreateNote(ctx, sampleNote("n-1", "u-1", "groceries", createdOn))
	require.NoError(t, err)
	assert.Equal(t, "n-1", created.NoteID)

	found, err := repo.FindNote(ctx, "n-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "groceries", found.NoteTitle)
	assert.Equal(t, "content of groceries", found.NoteContent)
}

func TestNoteRepository_FindNotesByUser_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// inserted oldest-first to make the sort do real work
	for i := 0; i < 3; i++ {
		note := sampleNote(fmt.Sprintf("n-%d", i), "u-1", fmt.Sprintf("note %d", i), base.Add(time.Duration(i)*time.Hour))
		_, err := repo.CreateNote(ctx, note)
		require.NoError(t, err)
	}
	_, err := repo.CreateNote(ctx, sampleNote("n-other", "u-2", "foreign", base))
	require.NoError(t, err)

	notes, err := repo.FindNotesByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "n-2", notes[0].NoteID)
	assert.Equal(t, "n-1", notes[1].NoteID)
	assert.Equal(t, "n-0", notes[2].NoteID)
}

func TestNoteRepository_FindNotesByUser_EmptyList(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	notes, err := repo.FindNotesByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_CrossOwnerScoping(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	_, err := repo.CreateNote(ctx, sampleNote("n-1", "u-1", "private", time.Now().UTC()))
	require.NoError(t, err)

	// a foreign note must be indistinguishable from a missing one
	_, err = repo.FindNote(ctx, "n-1", "u-2")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = repo.UpdateNote(ctx, "n-1", "u-2", models.NoteUpdate{NoteTitle: strPtr("stolen")})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	err = repo.DeleteNote(ctx, "n-1", "u-2")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	// and the owner still sees the original
	note, err := repo.FindNote(ctx, "n-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "private", note.NoteTitle)
}

func TestNoteRepository_UpdateNote_PartialMerge(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	createdOn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.CreateNote(ctx, sampleNote("n-1", "u-1", "old title", createdOn))
	require.NoError(t, err)

	updated, err := repo.UpdateNote(ctx, "n-1", "u-1", models.NoteUpdate{NoteTitle: strPtr("new title")})
	require.NoError(t, err)

	assert.Equal(t, "new title", updated.NoteTitle)
	assert.Equal(t, "content of old title", updated.NoteContent) // untouched
	assert.True(t, updated.CreatedOn.Equal(createdOn))           // untouched
	assert.True(t, updated.LastUpdate.After(createdOn))
}

func TestNoteRepository_UpdateNote_ContentOnly(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	_, err := repo.CreateNote(ctx, sampleNote("n-1", "u-1", "title", time.Now().UTC()))
	require.NoError(t, err)

	updated, err := repo.UpdateNote(ctx, "n-1", "u-1", models.NoteUpdate{NoteContent: strPtr("rewritten")})
	require.NoError(t, err)
	assert.Equal(t, "title", updated.NoteTitle)
	assert.Equal(t, "rewritten", updated.NoteContent)
}

func TestNoteRepository_UpdateNote_EmptyPatchStillBumpsLastUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	createdOn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.CreateNote(ctx, sampleNote("n-1", "u-1", "title", createdOn))
	require.NoError(t, err)

	updated, err := repo.UpdateNote(ctx, "n-1", "u-1", models.NoteUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "title", updated.NoteTitle)
	assert.True(t, updated.LastUpdate.After(createdOn))
}

func TestNoteRepository_UpdateNote_Missing(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	_, err := repo.UpdateNote(ctx, "n-missing", "u-1", models.NoteUpdate{NoteTitle: strPtr("x")})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_DeleteNote(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().NoteRepository

	_, err := repo.CreateNote(ctx, sampleNote("n-1", "u-1", "doomed", time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteNote(ctx, "n-1", "u-1"))

	// second delete reports not found, not success
	err = repo.DeleteNote(ctx, "n-1", "u-1")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = repo.FindNote(ctx, "n-1", "u-1")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
