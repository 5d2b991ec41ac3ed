package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorages() *Storages {
	db := NewMemoryDatabase()
	db.DeclareUniqueIndex("users", "user_email")
	log := logger.Nop()

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		Degraded:       true,
	}
}

func sampleUser(id, email string) models.User {
	now := time.Now().UTC()
	return models.User{
		UserID:     id,
		UserName:   "Sample User",
		UserEmail:  email,
		Password:   "$2a$10$abcdefghijklmnopqrstuv",
		CreatedOn:  now,
		LastUpdate: now,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().UserRepository

	created, err := repo.CreateUser(ctx, sampleUser("u-1", "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID)

	found, err := repo.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.UserID)
	assert.Equal(t, "alice@example.com", found.UserEmail)
	assert.Equal(t, created.Password, found.Password)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().UserRepository

	_, err := repo.CreateUser(ctx, sampleUser("u-1", "alice@example.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, sampleUser("u-2", "alice@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// the winner is untouched by the rejected insert
	found, err := repo.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.UserID)
}

func TestUserRepository_FindUnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().UserRepository

	_, err := repo.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_EmailLookupIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages().UserRepository

	_, err := repo.CreateUser(ctx, sampleUser("u-1", "alice@example.com"))
	require.NoError(t, err)

	_, err = repo.FindUserByEmail(ctx, "Alice@Example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
