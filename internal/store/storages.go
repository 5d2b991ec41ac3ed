package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages bundles the repositories bound to the store implementation
// chosen at startup. The binding is decided exactly once and handed to
// every component explicitly; there is no process-wide implicit singleton.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository

	// Degraded is true when the process runs on the in-memory fallback.
	// Data does not survive a restart in this mode.
	Degraded bool
}

// NewStorages probes the networked backend and binds the repositories.
//
// On a successful probe the MongoDB implementation is used and the declared
// indexes are created; an index-creation failure is logged and otherwise
// ignored (constraint enforcement may be degraded until the indexes exist).
// On probe failure a fresh in-memory database is bound instead and a
// degraded-mode warning is emitted. The decision is not re-evaluated while
// the process runs: no reconnection, no failback.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) *Storages {
	database, degraded := openDatabase(ctx, cfg.Mongo, log)

	return &Storages{
		UserRepository: NewUserRepository(database, log),
		NoteRepository: NewNoteRepository(database, log),
		Degraded:       degraded,
	}
}

func openDatabase(ctx context.Context, cfg config.Mongo, log *logger.Logger) (Database, bool) {
	db, err := NewConnectMongo(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Str("uri", cfg.URI).Msg("could not connect to document store")
		log.Warn().Msg("falling back to in-memory store: data will not persist across restarts")

		memory := NewMemoryDatabase()
		memory.DeclareUniqueIndex("users", "user_email")
		return memory, true
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not create indexes on startup")
	}

	return db, false
}
