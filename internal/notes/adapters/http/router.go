package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"mininotes/internal/notes/adapters/http/middleware"
	"mininotes/internal/notes/app/dto"
	"mininotes/internal/notes/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, noteService api.NoteService, allowedOrigins []string) {
	handler := NewHandler(noteService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete},
		AllowHeaders: []string{fiber.HeaderContentType},
	}))

	app.Get("/", handler.Home)

	notesRoutes := app.Group("/notes")
	notesRoutes.Get("/", handler.ListNotes)
	notesRoutes.Post("/", handler.CreateNote)
	notesRoutes.Get("/:id", handler.GetNote)
	notesRoutes.Put("/:id", handler.UpdateNote)
	notesRoutes.Delete("/:id", handler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: "Route not found",
		})
	})
}
