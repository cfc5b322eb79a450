package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"noteboard/internal/server/domain/entities"
	"noteboard/internal/server/ports/repositories"
	"noteboard/pkg/logger"
)

// Error messages.
const (
	ErrListCategories = "failed to list categories"
	ErrCreateCategory = "failed to create category"
)

// CategoryRepository implements repositories.CategoryRepository on PostgreSQL.
type CategoryRepository struct {
	db DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", "CategoryRepository.List"))

	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		log.Error(ctx, ErrListCategories, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListCategories, err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0)
	for rows.Next() {
		var category entities.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			log.Error(ctx, ErrListCategories, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrListCategories, err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrListCategories, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListCategories, err)
	}

	return categories, nil
}

// Create persists a new category. Name uniqueness is enforced by the unique
// index and surfaced as entities.ErrCategoryNameTaken.
func (r *CategoryRepository) Create(ctx context.Context, name string) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", "CategoryRepository.Create"))

	var category entities.Category
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&category.ID, &category.Name)

	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			log.Debug(ctx, "category name already exists", zap.String("name", name))
			return nil, entities.ErrCategoryNameTaken
		}
		log.Error(ctx, ErrCreateCategory, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateCategory, err)
	}

	log.Debug(ctx, "category created", zap.Int64("categoryID", category.ID))
	return &category, nil
}
