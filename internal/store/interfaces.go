package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository is the data-access contract for user-owned notes. Every
// method scopes its work to the given owner: a note belonging to another
// user behaves exactly like a note that does not exist.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, filter models.NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
