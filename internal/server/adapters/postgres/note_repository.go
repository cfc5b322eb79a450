package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteboard/internal/server/domain/entities"
	"noteboard/internal/server/ports/repositories"
	"noteboard/pkg/logger"
)

// Error messages.
const (
	ErrListNotes  = "failed to list notes"
	ErrGetNote    = "failed to get note"
	ErrCreateNote = "failed to create note"
	ErrUpdateNote = "failed to update note"
	ErrDeleteNote = "failed to delete note"
)

const selectNote = `SELECT n.id, n.title, n.content, n.category_id, n.created_at, n.updated_at, c.id, c.name
FROM notes n
LEFT JOIN categories c ON c.id = n.category_id`

// NoteRepository implements repositories.NoteRepository on PostgreSQL.
type NoteRepository struct {
	db DB
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(db DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

// List returns all notes with their categories, newest update first.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))

	rows, err := r.db.Query(ctx, selectNote+` ORDER BY n.updated_at DESC`)
	if err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, ErrListNotes, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}

	return notes, nil
}

// GetByID returns the note with its category joined.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))

	note, err := scanNote(r.db.QueryRow(ctx, selectNote+` WHERE n.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, ErrGetNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrGetNote, err)
	}

	return note, nil
}

// Create persists a new note and returns it with its category joined.
func (r *NoteRepository) Create(ctx context.Context, title, content string, categoryID *int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO notes (title, content, category_id) VALUES ($1, $2, $3) RETURNING id`,
		title, content, categoryID,
	).Scan(&id)

	if err != nil {
		if isPgError(err, codeForeignKeyViolation) {
			log.Debug(ctx, "category reference does not resolve")
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", id))
	return r.GetByID(ctx, id)
}

// Update applies the change set. The updated_at column is refreshed by a
// trigger on every write.
func (r *NoteRepository) Update(ctx context.Context, id int64, changes entities.NoteChanges) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if changes.Title != nil {
		args = append(args, *changes.Title)
		sets = append(sets, "title = $"+strconv.Itoa(len(args)))
	}
	if changes.Content != nil {
		args = append(args, *changes.Content)
		sets = append(sets, "content = $"+strconv.Itoa(len(args)))
	}
	if changes.CategorySet {
		args = append(args, changes.CategoryID)
		sets = append(sets, "category_id = $"+strconv.Itoa(len(args)))
	}

	args = append(args, id)
	query := `UPDATE notes SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isPgError(err, codeForeignKeyViolation) {
			log.Debug(ctx, "category reference does not resolve")
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, ErrUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("noteID", id))
		return nil, entities.ErrNoteNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the note.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))

	result, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, ErrDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteNote, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("noteID", id))
		return entities.ErrNoteNotFound
	}

	return nil
}

// scanNote reads one joined note row.
func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	var catID *int64
	var catName *string

	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CategoryID,
		&note.CreatedAt, &note.UpdatedAt, &catID, &catName)
	if err != nil {
		return nil, err
	}

	if catID != nil && catName != nil {
		note.Category = &entities.Category{ID: *catID, Name: *catName}
	}
	return &note, nil
}
