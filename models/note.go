package models

import "time"

// Note is a single note record owned by one user.
//
// Notes are stored independently and merely tagged with the owner's id;
// every read, update and delete must additionally filter by UserID so one
// user can never observe or mutate another's note.
type Note struct {
	// NoteID is the unique identifier of the note, generated at creation.
	NoteID string `json:"note_id" bson:"note_id"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id" bson:"user_id"`

	// NoteTitle is the user-supplied title of the note.
	NoteTitle string `json:"note_title" bson:"note_title"`

	// NoteContent is the body of the note.
	NoteContent string `json:"note_content" bson:"note_content"`

	// LastUpdate is bumped on every modification of the note.
	LastUpdate time.Time `json:"last_update" bson:"last_update"`

	// CreatedOn is the timestamp when the note was created.
	CreatedOn time.Time `json:"created_on" bson:"created_on"`
}

// NoteUpdate carries a partial modification of a note. Nil fields are left
// untouched; non-nil fields overwrite the stored values.
type NoteUpdate struct {
	NoteTitle   *string `json:"note_title"`
	NoteContent *string `json:"note_content"`
}

// CollectionName returns the name of the document collection
// associated with the Note model.
func (n Note) CollectionName() string {
	return "notes"
}
