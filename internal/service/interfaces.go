package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, signup models.SignupRequest) (models.User, error)
	Login(ctx context.Context, signin models.SigninRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, userID string, create models.NoteCreateRequest) (models.Note, error)
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}
