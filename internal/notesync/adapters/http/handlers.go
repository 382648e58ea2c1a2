// Package http содержит локальный HTTP интерфейс управления контроллером
// синхронизации. Каждый маршрут отвечает снимком состояния после действия.
package http

import (
	"net/url"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesync/internal/notesync/domain/entities"
	"notesync/internal/notesync/ports/services"
	"notesync/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerState     = "sync handler: state"
	LogHandlerDraft     = "sync handler: set draft"
	LogHandlerSubmit    = "sync handler: submit draft"
	LogHandlerRefresh   = "sync handler: refresh"
	LogHandlerCreate    = "sync handler: create note"
	LogHandlerDelete    = "sync handler: delete note"
	LogHandlerSummarize = "sync handler: summarize"

	ErrorInvalidRequest = "invalid request"
	ErrorInvalidNoteID  = "invalid note id"
)

// DraftRequest - тело PUT /draft.
type DraftRequest struct {
	Text string `json:"text"`
}

// CreateRequest - тело POST /notes.
type CreateRequest struct {
	Content string `json:"content"`
}

// Handler связывает маршруты с контроллером синхронизации.
type Handler struct {
	sync services.SyncService
}

// NewHandler создает обработчик.
func NewHandler(sync services.SyncService) *Handler {
	return &Handler{sync: sync}
}

// State возвращает текущий снимок.
func (h *Handler) State(ctx fiber.Ctx) error {
	logger.Log(ctx.Context()).Debug(ctx.Context(), LogHandlerState)
	return h.respond(ctx)
}

// SetDraft заменяет текст черновика.
func (h *Handler) SetDraft(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDraft)

	var req DraftRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	h.sync.SetDraft(req.Text)
	return h.respond(ctx)
}

// SubmitDraft сохраняет текущий черновик.
func (h *Handler) SubmitDraft(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerSubmit)

	h.sync.SubmitDraft(requestCtx)
	return h.respond(ctx)
}

// Refresh перезагружает заметки с сервиса.
func (h *Handler) Refresh(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerRefresh)

	h.sync.Refresh(requestCtx)
	return h.respond(ctx)
}

// Create сохраняет заметку с переданным текстом.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req CreateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Warn(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	h.sync.Create(requestCtx, req.Content)
	return h.respond(ctx)
}

// Delete удаляет заметку по id из пути.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	id, err := url.PathUnescape(ctx.Params("id"))
	if err != nil || id == "" {
		log.Warn(requestCtx, ErrorInvalidNoteID, zap.String("id", ctx.Params("id")))
		return badRequest(ctx, ErrorInvalidNoteID)
	}
	log.Info(requestCtx, LogHandlerDelete, zap.String("note_id", id))

	h.sync.Delete(requestCtx, entities.NoteID(id))
	return h.respond(ctx)
}

// Summarize запрашивает сводку по заметкам.
func (h *Handler) Summarize(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerSummarize)

	h.sync.Summarize(requestCtx)
	return h.respond(ctx)
}

func (h *Handler) respond(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(h.sync.Snapshot())
}

func badRequest(ctx fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
