package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"notesync/internal/notesync/domain/entities"
	"notesync/internal/notesync/ports/api"
	"notesync/pkg/logger"
)

// Пути сервиса заметок.
const (
	PathNotes   = "/notes"
	PathSummary = "/summary"
)

// Константы для логирования.
const (
	LogMethodListNotes  = "ListNotes"
	LogMethodCreateNote = "CreateNote"
	LogMethodDeleteNote = "DeleteNote"
	LogMethodGetSummary = "GetSummary"
)

// NotesClient реализует api.NotesAPI поверх Gateway.
type NotesClient struct {
	gateway *Gateway
}

// NewNotesClient создает клиент сервиса заметок.
func NewNotesClient(gateway *Gateway) api.NotesAPI {
	return &NotesClient{gateway: gateway}
}

// ListNotes выполняет GET /notes.
func (c *NotesClient) ListNotes(ctx context.Context) ([]entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodListNotes))

	var notes []entities.Note
	if err := c.gateway.Perform(ctx, http.MethodGet, PathNotes, nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		return nil, fmt.Errorf("%w: GET %s: expected array, got null", ErrMalformedResponse, PathNotes)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// CreateNote выполняет POST /notes.
func (c *NotesClient) CreateNote(ctx context.Context, content string) (entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodCreateNote))

	var note entities.Note
	req := entities.CreateNoteRequest{Content: content}
	if err := c.gateway.Perform(ctx, http.MethodPost, PathNotes, req, &note); err != nil {
		return entities.Note{}, err
	}

	log.Debug(ctx, "note created", zap.String("note_id", note.ID.String()))
	return note, nil
}

// DeleteNote выполняет DELETE /notes/{id}.
func (c *NotesClient) DeleteNote(ctx context.Context, id entities.NoteID) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDeleteNote))

	path := PathNotes + "/" + url.PathEscape(id.String())
	if err := c.gateway.Perform(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	log.Debug(ctx, "note deleted", zap.String("note_id", id.String()))
	return nil
}

// GetSummary выполняет GET /summary.
func (c *NotesClient) GetSummary(ctx context.Context) (entities.Summary, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGetSummary))

	var summary entities.Summary
	if err := c.gateway.Perform(ctx, http.MethodGet, PathSummary, nil, &summary); err != nil {
		return entities.Summary{}, err
	}

	log.Debug(ctx, "summary received", zap.Int("length", len(summary.Text)))
	return summary, nil
}
