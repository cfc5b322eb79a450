// Package repositories defines the persistence ports of the server.
package repositories

import (
	"context"

	"noteboard/internal/server/domain/entities"
)

// NoteRepository is the persistence port for notes. Every note read returns
// the joined category when the note references one.
type NoteRepository interface {
	// List returns all notes ordered by updated_at descending.
	List(ctx context.Context) ([]*entities.Note, error)
	// GetByID returns the note or entities.ErrNoteNotFound.
	GetByID(ctx context.Context, id int64) (*entities.Note, error)
	// Create persists a new note and returns it with store-assigned id and
	// timestamps. Returns entities.ErrCategoryNotFound when the category
	// reference does not resolve.
	Create(ctx context.Context, title, content string, categoryID *int64) (*entities.Note, error)
	// Update applies the change set and returns the updated note.
	// Returns entities.ErrNoteNotFound or entities.ErrCategoryNotFound.
	Update(ctx context.Context, id int64, changes entities.NoteChanges) (*entities.Note, error)
	// Delete removes the note or returns entities.ErrNoteNotFound.
	Delete(ctx context.Context, id int64) error
}
