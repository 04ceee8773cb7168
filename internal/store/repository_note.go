package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the sqlite-backed implementation of [NoteRepository].
// Every query carries the owning user_id in its WHERE clause so one user can
// never observe or modify another user's notes.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with server-assigned fields
// (NoteID, CreatedAt, UpdatedAt).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(note.TableName()).
		Columns("user_id", "title", "body", "pinned").
		Values(note.UserID, note.Title, note.Body, note.Pinned).
		Suffix("RETURNING note_id, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.NoteID, &note.CreatedAt, &note.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// GetNote retrieves a single note by ID, scoped to its owner.
//
// Returns [ErrNoteNotFound] when the note does not exist or belongs to a
// different user.
func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("note_id", "user_id", "title", "body", "pinned", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error building select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Body, &note.Pinned, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListNotes returns the user's notes, newest first, narrowed by the optional
// filter criteria (substring search, pinned-only, limit).
func (r *noteRepository) ListNotes(ctx context.Context, userID int64, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("note_id", "user_id", "title", "body", "pinned", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "note_id DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"title": pattern},
			sq.Like{"body": pattern},
		})
	}
	if filter.PinnedOnly {
		builder = builder.Where(sq.Eq{"pinned": true})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Body, &note.Pinned, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote overwrites the mutable fields of an existing note and bumps its
// updated_at timestamp.
//
// Returns [ErrNoteNotFound] when the note does not exist or belongs to a
// different user.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(note.TableName()).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("pinned", note.Pinned).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"note_id": note.NoteID, "user_id": note.UserID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// DeleteNote removes a note by ID, scoped to its owner.
//
// Returns [ErrNoteNotFound] when nothing was deleted.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error executing delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
