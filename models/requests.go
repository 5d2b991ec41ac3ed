package models

// SignupRequest is the payload of POST /auth/signup.
type SignupRequest struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Password  string `json:"password"`
}

// SigninRequest is the payload of POST /auth/signin.
type SigninRequest struct {
	UserEmail string `json:"user_email"`
	Password  string `json:"password"`
}

// NoteCreateRequest is the payload of POST /notes.
type NoteCreateRequest struct {
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
}
