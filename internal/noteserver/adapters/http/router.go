package http

import (
	"slices"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"notesync/internal/noteserver/ports/services"
	"notesync/pkg/middleware"
)

// SetupRouter настраивает маршрутизацию HTTP API сервиса заметок.
func SetupRouter(app *fiber.App, notes services.NoteService, corsOrigins []string) {
	handler := NewHandler(notes)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowCredentials: !slices.Contains(corsOrigins, "*"),
	}))
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Post("/notes", handler.Create)
	app.Get("/notes", handler.List)
	app.Delete("/notes/:id", handler.Delete)
	app.Get("/summary", handler.Summary)

	app.Use(middleware.NotFound)
}
