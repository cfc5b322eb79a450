package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/client/state"
	"noteboard/internal/server/app/dto"
)

// fakeGateway is an in-memory implementation of state.Gateway recording the
// requests the controller issues.
type fakeGateway struct {
	notes      []*dto.Note
	categories []*dto.Category

	nextNoteID     int64
	nextCategoryID int64

	listCalls     int
	createCalls   int
	updateCalls   int
	deleteCalls   int
	lastUpdateID  int64
	lastUpdate    map[string]any
	failNextCall  error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{nextNoteID: 1, nextCategoryID: 1}
}

func (g *fakeGateway) takeErr() error {
	err := g.failNextCall
	g.failNextCall = nil
	return err
}

func (g *fakeGateway) ListNotes(context.Context) ([]*dto.Note, error) {
	if err := g.takeErr(); err != nil {
		return nil, err
	}
	g.listCalls++
	return g.notes, nil
}

func (g *fakeGateway) CreateNote(_ context.Context, title, content string, categoryID *int64) (*dto.Note, error) {
	if err := g.takeErr(); err != nil {
		return nil, err
	}
	g.createCalls++
	note := &dto.Note{ID: g.nextNoteID, Title: title, Content: content, CategoryID: categoryID}
	g.nextNoteID++
	g.notes = append([]*dto.Note{note}, g.notes...)
	return note, nil
}

func (g *fakeGateway) UpdateNote(_ context.Context, id int64, fields map[string]any) (*dto.Note, error) {
	if err := g.takeErr(); err != nil {
		return nil, err
	}
	g.updateCalls++
	g.lastUpdateID = id
	g.lastUpdate = fields
	for _, note := range g.notes {
		if note.ID == id {
			if title, ok := fields["title"].(string); ok {
				note.Title = title
			}
			if content, ok := fields["content"].(string); ok {
				note.Content = content
			}
			return note, nil
		}
	}
	return nil, errors.New("Note not found")
}

func (g *fakeGateway) DeleteNote(_ context.Context, id int64) error {
	if err := g.takeErr(); err != nil {
		return err
	}
	g.deleteCalls++
	for i, note := range g.notes {
		if note.ID == id {
			g.notes = append(g.notes[:i], g.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("Note not found")
}

func (g *fakeGateway) ListCategories(context.Context) ([]*dto.Category, error) {
	if err := g.takeErr(); err != nil {
		return nil, err
	}
	return g.categories, nil
}

func (g *fakeGateway) CreateCategory(_ context.Context, name string) (*dto.Category, error) {
	if err := g.takeErr(); err != nil {
		return nil, err
	}
	category := &dto.Category{ID: g.nextCategoryID, Name: name}
	g.nextCategoryID++
	g.categories = append(g.categories, category)
	return category, nil
}

func ptr(v int64) *int64 { return &v }

func seededController(t *testing.T) (*state.Controller, *fakeGateway) {
	t.Helper()

	gateway := newFakeGateway()
	gateway.categories = []*dto.Category{
		{ID: 1, Name: "Ideas"},
		{ID: 2, Name: "Work"},
	}
	gateway.notes = []*dto.Note{
		{ID: 1, Title: "Groceries", Content: "milk and eggs", CategoryID: nil},
		{ID: 2, Title: "Sprint notes", Content: "retro on Friday", CategoryID: ptr(2), Category: &dto.Category{ID: 2, Name: "Work"}},
		{ID: 3, Title: "Standup", Content: "blockers: none", CategoryID: ptr(2), Category: &dto.Category{ID: 2, Name: "Work"}},
		{ID: 4, Title: "App idea", Content: "notes with markdown", CategoryID: ptr(1), Category: &dto.Category{ID: 1, Name: "Ideas"}},
	}
	gateway.nextNoteID = 5
	gateway.nextCategoryID = 3

	ctl := state.NewController(gateway)
	require.NoError(t, ctl.Load(context.Background()))
	return ctl, gateway
}

func TestVisible_Filtering(t *testing.T) {
	ctl, _ := seededController(t)

	t.Run("no filters returns everything", func(t *testing.T) {
		ctl.SetSearch("")
		ctl.SetCategoryFilter(nil)
		assert.Len(t, ctl.Visible(), 4)
	})

	t.Run("category filter alone", func(t *testing.T) {
		ctl.SetSearch("")
		ctl.SetCategoryFilter(ptr(2))
		visible := ctl.Visible()
		require.Len(t, visible, 2)
		for _, note := range visible {
			assert.Equal(t, int64(2), *note.CategoryID)
		}
	})

	t.Run("search is case-insensitive over title and content", func(t *testing.T) {
		ctl.SetCategoryFilter(nil)

		ctl.SetSearch("SPRINT")
		require.Len(t, ctl.Visible(), 1)
		assert.Equal(t, int64(2), ctl.Visible()[0].ID)

		ctl.SetSearch("milk")
		require.Len(t, ctl.Visible(), 1)
		assert.Equal(t, int64(1), ctl.Visible()[0].ID)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		ctl.SetCategoryFilter(ptr(2))
		ctl.SetSearch("friday")
		visible := ctl.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, int64(2), visible[0].ID)

		// Matches the search but not the category.
		ctl.SetSearch("markdown")
		assert.Empty(t, ctl.Visible())
	})

	t.Run("filtering never calls the server", func(t *testing.T) {
		ctl, gateway := seededController(t)
		before := gateway.listCalls
		ctl.SetSearch("sprint")
		ctl.SetCategoryFilter(ptr(1))
		ctl.Visible()
		assert.Equal(t, before, gateway.listCalls)
	})
}

func TestFormStateMachine(t *testing.T) {
	t.Run("starts in create mode with an empty draft", func(t *testing.T) {
		ctl, _ := seededController(t)
		assert.Equal(t, state.ModeCreate, ctl.Mode())
		assert.Equal(t, state.Draft{}, ctl.Draft())
	})

	t.Run("begin edit populates the draft from the note", func(t *testing.T) {
		ctl, _ := seededController(t)
		require.NoError(t, ctl.BeginEdit(2))

		assert.Equal(t, state.ModeEdit, ctl.Mode())
		assert.Equal(t, int64(2), ctl.EditingID())
		assert.Equal(t, "Sprint notes", ctl.Draft().Title)
		assert.Equal(t, "retro on Friday", ctl.Draft().Content)
		require.NotNil(t, ctl.Draft().CategoryID)
		assert.Equal(t, int64(2), *ctl.Draft().CategoryID)
	})

	t.Run("begin edit of an unknown note fails", func(t *testing.T) {
		ctl, _ := seededController(t)
		assert.ErrorIs(t, ctl.BeginEdit(99), state.ErrUnknownNote)
		assert.Equal(t, state.ModeCreate, ctl.Mode())
	})

	t.Run("cancel resets to create mode", func(t *testing.T) {
		ctl, _ := seededController(t)
		require.NoError(t, ctl.BeginEdit(2))
		ctl.CancelEdit()

		assert.Equal(t, state.ModeCreate, ctl.Mode())
		assert.Equal(t, state.Draft{}, ctl.Draft())
	})

	t.Run("submit in create mode issues a create and reloads", func(t *testing.T) {
		ctl, gateway := seededController(t)
		listCallsBefore := gateway.listCalls

		ctl.SetDraft(state.Draft{Title: "New note", Content: "body", CategoryID: ptr(1)})
		require.NoError(t, ctl.Submit(context.Background()))

		assert.Equal(t, 1, gateway.createCalls)
		assert.Equal(t, state.ModeCreate, ctl.Mode())
		assert.Equal(t, state.Draft{}, ctl.Draft())
		assert.Greater(t, gateway.listCalls, listCallsBefore, "successful save must reload")
		assert.Len(t, ctl.Notes(), 5)
	})

	t.Run("submit in edit mode updates the captured id", func(t *testing.T) {
		ctl, gateway := seededController(t)
		require.NoError(t, ctl.BeginEdit(3))

		draft := ctl.Draft()
		draft.Title = "Standup notes"
		ctl.SetDraft(draft)
		require.NoError(t, ctl.Submit(context.Background()))

		assert.Equal(t, 1, gateway.updateCalls)
		assert.Equal(t, int64(3), gateway.lastUpdateID)
		assert.Equal(t, "Standup notes", gateway.lastUpdate["title"])
		assert.Equal(t, state.ModeCreate, ctl.Mode())
	})

	t.Run("blank title or content rejects the submit locally", func(t *testing.T) {
		ctl, gateway := seededController(t)

		ctl.SetDraft(state.Draft{Title: "   ", Content: "body"})
		assert.ErrorIs(t, ctl.Submit(context.Background()), state.ErrTitleContentRequired)

		ctl.SetDraft(state.Draft{Title: "title", Content: "\t\n"})
		assert.ErrorIs(t, ctl.Submit(context.Background()), state.ErrTitleContentRequired)

		assert.Zero(t, gateway.createCalls, "no request may be sent")
		assert.Zero(t, gateway.updateCalls)
	})

	t.Run("failed save keeps the form in edit mode", func(t *testing.T) {
		ctl, gateway := seededController(t)
		require.NoError(t, ctl.BeginEdit(2))

		gateway.failNextCall = errors.New("boom")
		require.Error(t, ctl.Submit(context.Background()))

		assert.Equal(t, state.ModeEdit, ctl.Mode())
		assert.Equal(t, int64(2), ctl.EditingID())
	})
}

func TestConfirmDelete(t *testing.T) {
	t.Run("deleting the edited note resets the form", func(t *testing.T) {
		ctl, gateway := seededController(t)
		require.NoError(t, ctl.BeginEdit(2))

		require.NoError(t, ctl.ConfirmDelete(context.Background(), 2))

		assert.Equal(t, 1, gateway.deleteCalls)
		assert.Equal(t, state.ModeCreate, ctl.Mode())
		assert.Equal(t, state.Draft{}, ctl.Draft())
		assert.Len(t, ctl.Notes(), 3)
	})

	t.Run("deleting another note keeps the edit in progress", func(t *testing.T) {
		ctl, _ := seededController(t)
		require.NoError(t, ctl.BeginEdit(2))

		require.NoError(t, ctl.ConfirmDelete(context.Background(), 1))

		assert.Equal(t, state.ModeEdit, ctl.Mode())
		assert.Equal(t, int64(2), ctl.EditingID())
	})

	t.Run("failed delete leaves state untouched", func(t *testing.T) {
		ctl, gateway := seededController(t)
		gateway.failNextCall = errors.New("boom")

		require.Error(t, ctl.ConfirmDelete(context.Background(), 1))
		assert.Len(t, ctl.Notes(), 4)
	})
}

func TestAddCategory(t *testing.T) {
	t.Run("blank name is rejected locally", func(t *testing.T) {
		ctl, _ := seededController(t)
		assert.ErrorIs(t, ctl.AddCategory(context.Background(), "  "), state.ErrCategoryNameRequired)
	})

	t.Run("created category appears after reload", func(t *testing.T) {
		ctl, _ := seededController(t)
		require.NoError(t, ctl.AddCategory(context.Background(), "Personal"))

		names := make([]string, 0, len(ctl.Categories()))
		for _, category := range ctl.Categories() {
			names = append(names, category.Name)
		}
		assert.Contains(t, names, "Personal")
	})
}
