package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_FallsBackWhenBackendUnreachable(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{
		Mongo: config.Mongo{
			// nothing listens on this port; the probe must fail fast
			URI:            "mongodb://127.0.0.1:1",
			Database:       "notesdb",
			ConnectTimeout: 200 * time.Millisecond,
		},
	}

	storages := NewStorages(ctx, cfg, logger.Nop())

	require.NotNil(t, storages.UserRepository)
	require.NotNil(t, storages.NoteRepository)
	assert.True(t, storages.Degraded)
}

func TestNewStorages_FallbackEnforcesEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{
		Mongo: config.Mongo{
			URI:            "mongodb://127.0.0.1:1",
			Database:       "notesdb",
			ConnectTimeout: 200 * time.Millisecond,
		},
	}

	storages := NewStorages(ctx, cfg, logger.Nop())
	require.True(t, storages.Degraded)

	_, err := storages.UserRepository.CreateUser(ctx, sampleUser("u-1", "alice@example.com"))
	require.NoError(t, err)

	_, err = storages.UserRepository.CreateUser(ctx, sampleUser("u-2", "alice@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
