// Package http содержит HTTP API сервиса заметок.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesync/internal/noteserver/app"
	"notesync/internal/noteserver/ports/services"
	"notesync/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreate  = "notes handler: create"
	LogHandlerList    = "notes handler: list"
	LogHandlerDelete  = "notes handler: delete"
	LogHandlerSummary = "notes handler: summary"

	ErrorInvalidRequest       = "invalid request"
	ErrorContentRequired      = "content is required"
	ErrorFailedToServeRequest = "failed to serve request"
)

// CreateNoteRequest - тело POST /notes.
type CreateNoteRequest struct {
	Content *string `json:"content"`
}

// SummaryResponse - ответ GET /summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// Handler содержит HTTP обработчики заметок.
type Handler struct {
	notes services.NoteService
}

// NewHandler создает обработчик.
func NewHandler(notes services.NoteService) *Handler {
	return &Handler{notes: notes}
}

// Create обрабатывает POST /notes.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return errorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}
	if req.Content == nil {
		return errorResponse(ctx, fiber.StatusBadRequest, ErrorContentRequired)
	}

	note, err := h.notes.CreateNote(requestCtx, *req.Content)
	if err != nil {
		return h.failure(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(note)
}

// List обрабатывает GET /notes.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerList)

	notes, err := h.notes.ListNotes(requestCtx)
	if err != nil {
		return h.failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(notes)
}

// Delete обрабатывает DELETE /notes/:id.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerDelete, zap.String("note_id", ctx.Params("id")))

	id, err := app.ParseNoteID(ctx.Params("id"))
	if err != nil {
		return h.failure(ctx, err)
	}

	if err := h.notes.DeleteNote(requestCtx, id); err != nil {
		return h.failure(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// Summary обрабатывает GET /summary.
func (h *Handler) Summary(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSummary)

	summary, err := h.notes.Summary(requestCtx)
	if err != nil {
		return h.failure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(SummaryResponse{Summary: summary})
}

func (h *Handler) failure(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNoteNotFound):
		return errorResponse(ctx, fiber.StatusNotFound, app.ErrNoteNotFound.Error())
	case errors.Is(err, app.ErrInvalidNoteID):
		return errorResponse(ctx, fiber.StatusBadRequest, app.ErrInvalidNoteID.Error())
	default:
		requestCtx := ctx.Context()
		logger.Log(requestCtx).Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return errorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
	}
}

func errorResponse(ctx fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": msg})
}
