// Package memory содержит хранилище заметок в памяти процесса.
package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"notesync/internal/noteserver/domain/entities"
	"notesync/internal/noteserver/ports/repositories"
	"notesync/pkg/logger"
)

// NoteRepository хранит заметки в памяти, новые первыми. Id выдаются с 1.
type NoteRepository struct {
	mu     sync.RWMutex
	notes  []entities.Note
	nextID int64
}

// NewNoteRepository создает пустое хранилище.
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{nextID: 1}
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// Create сохраняет заметку в начало списка.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	r.mu.Lock()
	stored := *note
	stored.ID = r.nextID
	r.nextID++
	r.notes = append([]entities.Note{stored}, r.notes...)
	r.mu.Unlock()

	logger.Log(ctx).Debug(ctx, "note stored in memory", zap.Int64("note_id", stored.ID))
	return &stored, nil
}

// List возвращает копии всех заметок.
func (r *NoteRepository) List(_ context.Context) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*entities.Note, 0, len(r.notes))
	for i := range r.notes {
		note := r.notes[i]
		notes = append(notes, &note)
	}
	return notes, nil
}

// Delete удаляет заметку по id.
func (r *NoteRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i:i], r.notes[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNoteNotFound
}
