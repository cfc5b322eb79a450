// Package entities contains the domain model of the note board.
package entities

import "time"

// Note is a user-authored record with an optional category.
type Note struct {
	ID         int64
	Title      string
	Content    string
	CategoryID *int64
	Category   *Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NoteChanges describes a partial update. Nil fields are left untouched.
// Category is applied only when CategorySet is true; a nil CategoryID then
// clears the reference.
type NoteChanges struct {
	Title       *string
	Content     *string
	CategoryID  *int64
	CategorySet bool
}

// Empty reports whether the change set touches nothing.
func (c NoteChanges) Empty() bool {
	return c.Title == nil && c.Content == nil && !c.CategorySet
}
