// Package services defines the application service ports consumed by the
// HTTP handlers.
package services

import (
	"context"

	"noteboard/internal/server/app/dto"
)

// NoteService exposes the note operations of the API layer.
type NoteService interface {
	ListNotes(ctx context.Context) ([]*dto.Note, error)
	GetNote(ctx context.Context, id int64) (*dto.Note, error)
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Note, error)
	UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*dto.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// CategoryService exposes the category operations of the API layer.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]*dto.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.Category, error)
}
