package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a query, update or delete targets a
	// note (identified by note_id and user_id) that does not exist. A note
	// owned by a different user produces the same error so that ownership is
	// never leaked.
	ErrNoteNotFound = errors.New("note was not found")
)

// Low-level store engine errors. These are returned (or wrapped) by
// [Collection] implementations before any domain logic can be applied.
var (
	// ErrNotFound is returned by FindOne when no document matches the
	// filter. Absence is a normal outcome, not an exceptional path.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is returned by InsertOne when the document conflicts
	// with a declared unique index.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStoreUnavailable is returned when the networked backend cannot be
	// reached at call time. It is propagated to the caller, never silently
	// swallowed, and distinguishes an infrastructure condition from a
	// credential or data problem. The in-memory fallback never returns it.
	ErrStoreUnavailable = errors.New("store unavailable")
)
