// Package services описывает сервисы, вызываемые HTTP адаптером.
package services

import (
	"context"

	"notesync/internal/noteserver/domain/entities"
)

// NoteService определяет операции над заметками.
type NoteService interface {
	CreateNote(ctx context.Context, content string) (*entities.Note, error)
	ListNotes(ctx context.Context) ([]*entities.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	Summary(ctx context.Context) (string, error)
}
