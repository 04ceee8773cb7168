package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateTokenPair(ctx context.Context, userID int64) (models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, filter models.NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
