package repositories

import (
	"context"

	"noteboard/internal/server/domain/entities"
)

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	// List returns all categories ordered by name ascending.
	List(ctx context.Context) ([]*entities.Category, error)
	// Create persists a new category. Returns entities.ErrCategoryNameTaken
	// when the name is already in use.
	Create(ctx context.Context, name string) (*entities.Category, error)
}
