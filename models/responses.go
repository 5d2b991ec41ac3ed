package models

import "time"

// UserResponse is the public projection of a [User] returned from signup.
// It deliberately carries no password material.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	CreatedOn time.Time `json:"created_on"`
}

// NewUserResponse projects a persisted user into its public form.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		UserName:  user.UserName,
		UserEmail: user.UserEmail,
		CreatedOn: user.CreatedOn,
	}
}

// TokenResponse is the payload returned from a successful signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
