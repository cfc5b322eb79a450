package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"noteboard/internal/server/app/dto"
	"noteboard/internal/server/domain/entities"
	"noteboard/internal/server/ports/cache"
	"noteboard/internal/server/ports/repositories"
	"noteboard/internal/server/ports/services"
	"noteboard/pkg/logger"
)

// CategoryUseCase implements services.CategoryService.
type CategoryUseCase struct {
	categories repositories.CategoryRepository
	cache      cache.Cache
}

// NewCategoryUseCase creates the category application service. The cache may
// be nil.
func NewCategoryUseCase(categories repositories.CategoryRepository, listCache cache.Cache) services.CategoryService {
	return &CategoryUseCase{categories: categories, cache: listCache}
}

// ListCategories returns all categories ordered by name ascending.
func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*dto.Category, error) {
	log := logger.Log(ctx)

	if cached, ok := getCached[[]*dto.Category](ctx, uc.cache, CategoriesCacheKey); ok {
		log.Debug(ctx, "categories served from cache")
		return cached, nil
	}

	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := make([]*dto.Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, &dto.Category{ID: category.ID, Name: category.Name})
	}

	putCached(ctx, uc.cache, CategoriesCacheKey, result)
	return result, nil
}

// CreateCategory validates and persists a new category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, entities.ErrCategoryNameRequired
	}

	category, err := uc.categories.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, CategoriesCacheKey); err != nil {
			logger.Log(ctx).Warn(ctx, "cache invalidation failed", zap.Error(err))
		}
	}

	logger.Log(ctx).Info(ctx, "category created", zap.Int64("categoryID", category.ID))
	return &dto.Category{ID: category.ID, Name: category.Name}, nil
}
