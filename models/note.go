package models

import "time"

// Note is a single user-owned note record.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID int64 `json:"id"`

	// UserID is the owner of the note. Never exposed via JSON; ownership is
	// derived from the authenticated request context.
	UserID int64 `json:"-"`

	// Title is the short display title of the note.
	Title string `json:"title"`

	// Body is the note content.
	Body string `json:"body"`

	// Pinned marks a note the owner keeps at the top of listings.
	Pinned bool `json:"pinned"`

	// CreatedAt is the timestamp the note was first persisted.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteFilter carries the optional criteria for listing a user's notes.
// Zero-valued fields are not applied.
type NoteFilter struct {
	// Search restricts the listing to notes whose title or body contains
	// the given substring.
	Search string `json:"search,omitempty"`

	// PinnedOnly restricts the listing to pinned notes.
	PinnedOnly bool `json:"pinned_only,omitempty"`

	// Limit caps the number of returned notes; zero means no cap.
	Limit uint64 `json:"limit,omitempty"`
}
