// Package repositories определяет интерфейсы хранилища заметок.
package repositories

import (
	"context"
	"errors"

	"notesync/internal/noteserver/domain/entities"
)

// ErrNoteNotFound возвращается при удалении несуществующей заметки.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
type NoteRepository interface {
	// Create сохраняет заметку и возвращает ее с назначенным id.
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// List возвращает все заметки, новые первыми.
	List(ctx context.Context) ([]*entities.Note, error)

	// Delete удаляет заметку или возвращает ErrNoteNotFound.
	Delete(ctx context.Context, id int64) error
}
