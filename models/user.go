package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, generated at creation.
	UserID string `json:"user_id" bson:"user_id"`

	// UserName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	UserName string `json:"user_name" bson:"user_name"`

	// UserEmail is the unique email of the user.
	// It is the lookup key during authentication and the token subject.
	UserEmail string `json:"user_email" bson:"user_email"`

	// Password stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	Password string `json:"-" bson:"password"`

	// LastUpdate is the timestamp of the last account modification.
	LastUpdate time.Time `json:"last_update" bson:"last_update"`

	// CreatedOn is the timestamp when the user account was created.
	CreatedOn time.Time `json:"created_on" bson:"created_on"`
}

// CollectionName returns the name of the document collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
