// Package api определяет порт удаленного сервиса заметок.
package api

import (
	"context"

	"notesync/internal/notesync/domain/entities"
)

// NotesAPI определяет операции удаленного сервиса заметок.
type NotesAPI interface {
	// ListNotes возвращает все заметки в порядке сервера.
	ListNotes(ctx context.Context) ([]entities.Note, error)

	// CreateNote создает заметку и возвращает ее вместе с назначенным id.
	CreateNote(ctx context.Context, content string) (entities.Note, error)

	// DeleteNote удаляет заметку. Тело ответа игнорируется.
	DeleteNote(ctx context.Context, id entities.NoteID) error

	// GetSummary возвращает сводку по текущему набору заметок.
	GetSummary(ctx context.Context) (entities.Summary, error)
}
