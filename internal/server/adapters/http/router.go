// Package http wires the fiber application: middleware, API routes and the
// static browser client.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"

	"noteboard/internal/server/adapters/http/categories"
	"noteboard/internal/server/adapters/http/middleware"
	"noteboard/internal/server/adapters/http/notes"
	"noteboard/internal/server/ports/services"
)

// SetupRouter registers middleware and routes on the fiber app. staticDir is
// the directory the browser client is served from.
func SetupRouter(app *fiber.App, noteService services.NoteService, categoryService services.CategoryService, staticDir string) {
	notesHandler := notes.NewHandler(noteService)
	categoriesHandler := categories.NewHandler(categoryService)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	api := app.Group("/api")

	api.Get("/notes", notesHandler.ListNotes)
	api.Get("/notes/:id", notesHandler.GetNote)
	api.Post("/notes", notesHandler.CreateNote)
	api.Put("/notes/:id", notesHandler.UpdateNote)
	api.Delete("/notes/:id", notesHandler.DeleteNote)

	api.Get("/categories", categoriesHandler.ListCategories)
	api.Post("/categories", categoriesHandler.CreateCategory)

	// Unknown API routes answer in the error body shape of the contract.
	api.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})

	// The browser client and the root document.
	app.Get("/*", static.New(staticDir))
}
