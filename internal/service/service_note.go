package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService. It enforces
// request-level invariants (owner present, non-empty title) before delegating
// persistence to the NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote stores a new note for its owner.
//
// Returns ErrInvalidDataProvided if the owner is missing or the title is
// empty; otherwise the persisted note with server-assigned fields.
func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.UserID == 0 || note.Title == "" {
		log.Error().Int64("user_id", note.UserID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// GetNote returns a single note scoped to its owner.
func (n *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 || noteID == 0 {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := n.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("note_id", noteID).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	return note, nil
}

// ListNotes returns the user's notes narrowed by the optional filter.
func (n *noteService) ListNotes(ctx context.Context, userID int64, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	notes, err := n.noteRepository.ListNotes(ctx, userID, filter)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// UpdateNote overwrites the mutable fields of an existing note.
//
// Returns ErrInvalidDataProvided if identity fields are missing or the title
// is empty; a wrapped store.ErrNoteNotFound when the note does not exist or
// belongs to another user.
func (n *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.UserID == 0 || note.NoteID == 0 || note.Title == "" {
		log.Error().Int64("user_id", note.UserID).Int64("note_id", note.NoteID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	updatedNote, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Int64("note_id", note.NoteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote removes a note scoped to its owner.
func (n *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if userID == 0 || noteID == 0 {
		return ErrInvalidDataProvided
	}

	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("note_id", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
