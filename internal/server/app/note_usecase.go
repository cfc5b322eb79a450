// Package app contains the application services of the API layer.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"noteboard/internal/server/app/dto"
	"noteboard/internal/server/domain/entities"
	"noteboard/internal/server/ports/cache"
	"noteboard/internal/server/ports/repositories"
	"noteboard/internal/server/ports/services"
	"noteboard/pkg/logger"
)

// Cache keys for the list endpoints.
const (
	NotesCacheKey      = "noteboard:notes"
	CategoriesCacheKey = "noteboard:categories"
)

// NoteUseCase implements services.NoteService.
type NoteUseCase struct {
	notes repositories.NoteRepository
	cache cache.Cache
}

// NewNoteUseCase creates the note application service. The cache may be nil,
// in which case every read goes to the repository.
func NewNoteUseCase(notes repositories.NoteRepository, listCache cache.Cache) services.NoteService {
	return &NoteUseCase{notes: notes, cache: listCache}
}

// ListNotes returns all notes ordered by updated timestamp descending,
// served from the cache when a fresh copy exists.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*dto.Note, error) {
	log := logger.Log(ctx)

	if cached, ok := getCached[[]*dto.Note](ctx, uc.cache, NotesCacheKey); ok {
		log.Debug(ctx, "notes served from cache")
		return cached, nil
	}

	notes, err := uc.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	result := make([]*dto.Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, noteToDTO(note))
	}

	putCached(ctx, uc.cache, NotesCacheKey, result)
	return result, nil
}

// GetNote returns one note with its category.
func (uc *NoteUseCase) GetNote(ctx context.Context, id int64) (*dto.Note, error) {
	note, err := uc.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return noteToDTO(note), nil
}

// CreateNote validates and persists a new note.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Note, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, entities.ErrTitleContentRequired
	}

	note, err := uc.notes.Create(ctx, req.Title, req.Content, req.CategoryID.ID())
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, NotesCacheKey)
	logger.Log(ctx).Info(ctx, "note created", zap.Int64("noteID", note.ID))
	return noteToDTO(note), nil
}

// UpdateNote applies a partial update. A field that is absent, or blank
// after trimming, is left untouched; supplying no usable field at all is a
// validation error.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*dto.Note, error) {
	changes := entities.NoteChanges{}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		changes.Title = req.Title
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) != "" {
		changes.Content = req.Content
	}
	if req.CategoryID.Present {
		changes.CategorySet = true
		changes.CategoryID = req.CategoryID.ID()
	}

	if changes.Empty() {
		return nil, entities.ErrNoFieldsProvided
	}

	note, err := uc.notes.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, NotesCacheKey)
	logger.Log(ctx).Info(ctx, "note updated", zap.Int64("noteID", note.ID))
	return noteToDTO(note), nil
}

// DeleteNote removes a note.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id int64) error {
	if err := uc.notes.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, NotesCacheKey)
	logger.Log(ctx).Info(ctx, "note deleted", zap.Int64("noteID", id))
	return nil
}

// invalidate drops cache keys. Cache failures are logged and swallowed: the
// database stays the source of truth and the TTL bounds staleness.
func (uc *NoteUseCase) invalidate(ctx context.Context, keys ...string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, keys...); err != nil {
		logger.Log(ctx).Warn(ctx, "cache invalidation failed", zap.Error(err))
	}
}

// getCached loads and decodes a cached list, reporting a usable hit.
func getCached[T any](ctx context.Context, c cache.Cache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}

	raw, err := c.Get(ctx, key)
	if err != nil || raw == "" {
		return zero, false
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to decode cached value", zap.String("key", key), zap.Error(err))
		return zero, false
	}
	return value, true
}

// putCached stores a list in the cache with the default TTL.
func putCached[T any](ctx context.Context, c cache.Cache, key string, value T) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.Set(ctx, key, string(raw), time.Duration(0)); err != nil {
		logger.Log(ctx).Warn(ctx, "cache write failed", zap.Error(err))
	}
}

// noteToDTO maps a note entity onto the wire shape.
func noteToDTO(note *entities.Note) *dto.Note {
	result := &dto.Note{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		CategoryID: note.CategoryID,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
	if note.Category != nil {
		result.Category = &dto.Category{ID: note.Category.ID, Name: note.Category.Name}
	}
	return result
}
