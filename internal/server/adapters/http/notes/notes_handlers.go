// Package notes contains the HTTP handlers of the notes API.
package notes

import (
	"errors"
	"fmt"
	"strconv"

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
	ErrMsgInvalidNoteID      = "Invalid note id"
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInternal           = "Internal server error"
)

// Handler serves the /api/notes routes.
type Handler struct {
	noteService services.NoteService
}

// NewHandler creates a new notes handler.
func NewHandler(noteService services.NoteService) *Handler {
	return &Handler{noteService: noteService}
}

// ListNotes handles GET /api/notes.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))

	notes, err := h.noteService.ListNotes(userCtx)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote handles GET /api/notes/:id.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetNote"))

	id, err := parseNoteID(ctx)
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidNoteID, zap.String("id", ctx.Params("id")))
		return respondStatus(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.noteService.GetNote(userCtx, id)
	if err != nil {
		log.Error(userCtx, "failed to get note", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote handles POST /api/notes.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondStatus(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.CreateNote(userCtx, &req)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote handles PUT /api/notes/:id.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNote"))

	id, err := parseNoteID(ctx)
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidNoteID, zap.String("id", ctx.Params("id")))
		return respondStatus(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondStatus(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.UpdateNote(userCtx, id, &req)
	if err != nil {
		log.Error(userCtx, "failed to update note", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote handles DELETE /api/notes/:id.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))

	id, err := parseNoteID(ctx)
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidNoteID, zap.String("id", ctx.Params("id")))
		return respondStatus(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteService.DeleteNote(userCtx, id); err != nil {
		log.Error(userCtx, "failed to delete note", zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// parseNoteID parses the :id path segment.
func parseNoteID(ctx fiber.Ctx) (int64, error) {
	return strconv.ParseInt(ctx.Params("id"), 10, 64)
}

// respondStatus sends a JSON error body with the given status.
func respondStatus(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}
	return nil
}

// respondError maps a domain error onto the HTTP status taxonomy:
// validation and conflict errors to 400, not-found to 404, anything else
// to 500 with an opaque message.
func respondError(ctx fiber.Ctx, err error) error {
	switch {
	case entities.IsValidation(err):
		return respondStatus(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrNoteNotFound):
		return respondStatus(ctx, fiber.StatusNotFound, entities.ErrNoteNotFound.Error())
	case errors.Is(err, entities.ErrCategoryNotFound):
		return respondStatus(ctx, fiber.StatusBadRequest, entities.ErrCategoryNotFound.Error())
	case errors.Is(err, entities.ErrCategoryNameTaken):
		return respondStatus(ctx, fiber.StatusBadRequest, entities.ErrCategoryNameTaken.Error())
	default:
		return respondStatus(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}
}
