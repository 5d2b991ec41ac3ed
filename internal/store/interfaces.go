package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Filter is an equality-based match specification used to locate documents.
// A document matches when every listed field is exactly equal to the given
// value. No ranges, no regular expressions.
type Filter map[string]any

// Fields is a partial document used by [Collection.UpdateOne]: each listed
// field overwrites the stored value ($set semantics, shallow key overwrite),
// all other fields are left untouched.
type Fields map[string]any

// FindOptions carries the optional ordering directive for [Collection.Find].
type FindOptions struct {
	// SortField is the document field to order by. Empty means no ordering
	// beyond the implementation's natural order.
	SortField string

	// SortDesc orders descending when true, ascending otherwise.
	SortDesc bool
}

// Collection is the minimal document-store contract. It is implemented twice
// — by the MongoDB backend and by the in-memory fallback — and both
// implementations must satisfy it identically (see the shared conformance
// suite in the package tests).
//
// Failure semantics: any operation may fail with [ErrStoreUnavailable] when
// the backend is unreachable; the fallback implementation never returns it.
// "First match" is deterministic per implementation: insertion order for the
// fallback, the backend's natural order for MongoDB.
type Collection interface {
	// FindOne decodes the first document matching filter into dest.
	// Returns ErrNotFound when no document matches.
	FindOne(ctx context.Context, filter Filter, dest any) error

	// Find decodes all documents matching filter into dest, which must be a
	// pointer to a slice. Every element is an independent copy. opts may be
	// nil for unordered results.
	Find(ctx context.Context, filter Filter, opts *FindOptions, dest any) error

	// InsertOne appends a copy of doc to the collection. Insertion itself
	// does not enforce uniqueness; declared unique indexes reject a
	// conflicting insert with ErrDuplicateKey.
	InsertOne(ctx context.Context, doc any) error

	// UpdateOne merges set into the first document matching filter and
	// reports the number of modified documents (0 or 1). Zero matches is
	// not an error.
	UpdateOne(ctx context.Context, filter Filter, set Fields) (int64, error)

	// DeleteOne removes the first document matching filter and reports the
	// number of deleted documents (0 or 1). Zero matches is not an error.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)
}

// Database hands out named collections backed by one of the two conforming
// store implementations. The binding is chosen once at startup and held
// immutably thereafter.
type Database interface {
	Collection(name string) Collection
}

// UserRepository is the typed query boundary over the users collection.
// Callers never build raw filters; they use these methods.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository is the typed query boundary over the notes collection.
// Every operation on an existing note filters by the owning user's id, so a
// foreign note is indistinguishable from an absent one.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	FindNotesByUser(ctx context.Context, userID string) ([]models.Note, error)
	FindNote(ctx context.Context, noteID, userID string) (models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}
