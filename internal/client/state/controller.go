// Package state holds the client-side state of the note board: the last
// fetched note and category lists, the active filters, and the Create/Edit
// form state machine. Every user action is a discrete controller method, so
// the behavior is testable without any rendering surface. The controller
// never patches state locally: after every successful mutation it reloads
// the authoritative lists from the server.
package state

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"noteboard/internal/server/app/dto"
)

// Gateway is the slice of the API the controller drives. *api.Client
// implements it.
type Gateway interface {
	ListNotes(ctx context.Context) ([]*dto.Note, error)
	CreateNote(ctx context.Context, title, content string, categoryID *int64) (*dto.Note, error)
	UpdateNote(ctx context.Context, id int64, fields map[string]any) (*dto.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]*dto.Category, error)
	CreateCategory(ctx context.Context, name string) (*dto.Category, error)
}

// FormMode is the state of the note form.
type FormMode int

// Form modes.
const (
	ModeCreate FormMode = iota
	ModeEdit
)

// Local validation errors: the submit is rejected before any request is sent.
var (
	ErrTitleContentRequired = errors.New("please enter both title and content")
	ErrCategoryNameRequired = errors.New("please enter a category name")
	ErrUnknownNote          = errors.New("unknown note")
)

// Draft is the content of the note form.
type Draft struct {
	Title      string
	Content    string
	CategoryID *int64
}

// Controller is the single source of truth of the client.
type Controller struct {
	gateway Gateway

	notes      []*dto.Note
	categories []*dto.Category

	search         string
	categoryFilter *int64

	mode      FormMode
	draft     Draft
	editingID int64
}

// NewController creates a controller in Create mode with empty state.
func NewController(gateway Gateway) *Controller {
	return &Controller{gateway: gateway}
}

// Load fetches the full category and note lists and replaces the in-memory
// state wholesale.
func (c *Controller) Load(ctx context.Context) error {
	categories, err := c.gateway.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	notes, err := c.gateway.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	c.categories = categories
	c.notes = notes
	return nil
}

// Notes returns the full in-memory note list.
func (c *Controller) Notes() []*dto.Note {
	return c.notes
}

// Categories returns the in-memory category list.
func (c *Controller) Categories() []*dto.Category {
	return c.categories
}

// SetSearch updates the free-text search term.
func (c *Controller) SetSearch(term string) {
	c.search = term
}

// SetCategoryFilter selects a category filter; nil means all categories.
func (c *Controller) SetCategoryFilter(categoryID *int64) {
	c.categoryFilter = categoryID
}

// Visible derives the displayed subset of the in-memory list: notes whose
// category matches the selected filter AND whose title or content contains
// the search term case-insensitively. An empty filter is no constraint.
// Purely a function of current state; never touches the network.
func (c *Controller) Visible() []*dto.Note {
	term := strings.ToLower(strings.TrimSpace(c.search))

	visible := make([]*dto.Note, 0, len(c.notes))
	for _, note := range c.notes {
		if c.categoryFilter != nil {
			if note.CategoryID == nil || *note.CategoryID != *c.categoryFilter {
				continue
			}
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(note.Title), term) &&
			!strings.Contains(strings.ToLower(note.Content), term) {
			continue
		}
		visible = append(visible, note)
	}
	return visible
}

// Mode returns the current form mode.
func (c *Controller) Mode() FormMode {
	return c.mode
}

// Draft returns the current form content.
func (c *Controller) Draft() Draft {
	return c.draft
}

// EditingID returns the id captured when the form entered Edit mode, or zero.
func (c *Controller) EditingID() int64 {
	return c.editingID
}

// SetDraft replaces the form content, modeling the user typing into the form.
func (c *Controller) SetDraft(draft Draft) {
	c.draft = draft
}

// BeginEdit switches the form to Edit mode populated from the note's current
// in-memory values.
func (c *Controller) BeginEdit(id int64) error {
	for _, note := range c.notes {
		if note.ID == id {
			c.mode = ModeEdit
			c.editingID = id
			c.draft = Draft{Title: note.Title, Content: note.Content, CategoryID: note.CategoryID}
			return nil
		}
	}
	return ErrUnknownNote
}

// CancelEdit resets the form back to Create mode.
func (c *Controller) CancelEdit() {
	c.resetForm()
}

// Submit sends the draft: a create request in Create mode, an update scoped
// to the captured id in Edit mode. Empty title or content (after trimming)
// rejects the submit locally without any request. On success the form resets
// and the lists reload.
func (c *Controller) Submit(ctx context.Context) error {
	title := strings.TrimSpace(c.draft.Title)
	content := strings.TrimSpace(c.draft.Content)
	if title == "" || content == "" {
		return ErrTitleContentRequired
	}

	var err error
	if c.mode == ModeEdit {
		// The form always carries every field, so the update sends all of
		// them, category included, null when none is selected.
		fields := map[string]any{
			"title":      title,
			"content":    content,
			"categoryId": c.draft.CategoryID,
		}
		_, err = c.gateway.UpdateNote(ctx, c.editingID, fields)
	} else {
		_, err = c.gateway.CreateNote(ctx, title, content, c.draft.CategoryID)
	}
	if err != nil {
		return err
	}

	c.resetForm()
	return c.Load(ctx)
}

// ConfirmDelete issues the delete after the caller obtained explicit user
// confirmation. On success the lists reload, and when the deleted note is
// the one being edited the form resets to Create mode.
func (c *Controller) ConfirmDelete(ctx context.Context, id int64) error {
	if err := c.gateway.DeleteNote(ctx, id); err != nil {
		return err
	}

	if c.mode == ModeEdit && c.editingID == id {
		c.resetForm()
	}
	return c.Load(ctx)
}

// AddCategory validates and creates a category, then reloads the category
// list.
func (c *Controller) AddCategory(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCategoryNameRequired
	}

	if _, err := c.gateway.CreateCategory(ctx, strings.TrimSpace(name)); err != nil {
		return err
	}

	categories, err := c.gateway.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	c.categories = categories
	return nil
}

func (c *Controller) resetForm() {
	c.mode = ModeCreate
	c.editingID = 0
	c.draft = Draft{}
}
