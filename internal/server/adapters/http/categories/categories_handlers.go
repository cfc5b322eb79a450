// Package categories contains the HTTP handlers of the categories API.
package categories

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/server/adapters/http/middleware"
	"noteboard/internal/server/app/dto"
	"noteboard/internal/server/domain/entities"
	"noteboard/internal/server/ports/services"
	"noteboard/pkg/logger"
)

// Error messages of the wire contract.
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInternal           = "Internal server error"
)

// Handler serves the /api/categories routes.
type Handler struct {
	categoryService services.CategoryService
}

// NewHandler creates a new categories handler.
func NewHandler(categoryService services.CategoryService) *Handler {
	return &Handler{categoryService: categoryService}
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListCategories"))

	categories, err := h.categoryService.ListCategories(userCtx)
	if err != nil {
		log.Error(userCtx, "failed to list categories", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.JSON(categories); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateCategory handles POST /api/categories.
func (h *Handler) CreateCategory(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateCategory"))

	var req dto.CreateCategoryRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondStatus(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	category, err := h.categoryService.CreateCategory(userCtx, &req)
	if err != nil {
		log.Error(userCtx, "failed to create category", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(category); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// respondStatus sends a JSON error body with the given status.
func respondStatus(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}
	return nil
}

// respondError maps a domain error onto the HTTP status taxonomy.
func respondError(ctx fiber.Ctx, err error) error {
	switch {
	case entities.IsValidation(err):
		return respondStatus(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrCategoryNameTaken):
		return respondStatus(ctx, fiber.StatusBadRequest, entities.ErrCategoryNameTaken.Error())
	default:
		return respondStatus(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}
}
