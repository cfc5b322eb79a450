// Package dto contains the wire types of the public HTTP API.
package dto

import (
	"time"
)

// Note is a note as it appears on the wire, with its category joined.
type Note struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *int64    `json:"categoryId"`
	Category   *Category `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateNoteRequest is the body of POST /api/notes.
type CreateNoteRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID OptionalID `json:"categoryId"`
}

// UpdateNoteRequest is the body of PUT /api/notes/:id. Nil fields are left
// untouched; CategoryID distinguishes absent, null and a value.
type UpdateNoteRequest struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	CategoryID OptionalID `json:"categoryId"`
}

// Empty reports whether the request supplies no fields at all.
func (r *UpdateNoteRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && !r.CategoryID.Present
}
