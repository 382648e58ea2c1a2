package http

import (
	"github.com/gofiber/fiber/v3"

	"notesync/internal/notesync/ports/services"
	"notesync/pkg/middleware"
)

// SetupRouter настраивает маршруты локального интерфейса управления.
func SetupRouter(app *fiber.App, sync services.SyncService) {
	handler := NewHandler(sync)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/state", handler.State)

	app.Put("/draft", handler.SetDraft)
	app.Post("/draft/submit", handler.SubmitDraft)

	app.Post("/refresh", handler.Refresh)
	app.Post("/notes", handler.Create)
	app.Delete("/notes/:id", handler.Delete)
	app.Post("/summary", handler.Summarize)

	app.Use(middleware.NotFound)
}
