// Package postgres содержит хранилище заметок в PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notesync/internal/noteserver/domain/entities"
	"notesync/internal/noteserver/ports/repositories"
	"notesync/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodCreate = "NoteRepository.Create"
	LogMethodList   = "NoteRepository.List"
	LogMethodDelete = "NoteRepository.Delete"

	ErrorFailedToCreateNote  = "failed to create note"
	ErrorFailedToListNotes   = "failed to list notes"
	ErrorFailedToScanNote    = "failed to scan note"
	ErrorFailedToIterateRows = "error iterating rows"
	ErrorFailedToDeleteNote  = "failed to delete note"
)

const (
	queryCreateNote = `INSERT INTO notes (content, created_at) VALUES ($1, $2) RETURNING id, content, created_at`
	queryListNotes  = `SELECT id, content, created_at FROM notes ORDER BY id DESC`
	queryDeleteNote = `DELETE FROM notes WHERE id = $1`
)

// DBTX - подмножество pgxpool.Pool, используемое репозиторием.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	db DBTX
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodCreate))

	var stored entities.Note
	err := r.db.QueryRow(ctx, queryCreateNote, note.Content, note.CreatedAt).
		Scan(&stored.ID, &stored.Content, &stored.CreatedAt)
	if err != nil {
		log.Error(ctx, ErrorFailedToCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.Int64("note_id", stored.ID))
	return &stored, nil
}

// List возвращает заметки, новые первыми.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodList))

	rows, err := r.db.Query(ctx, queryListNotes)
	if err != nil {
		log.Error(ctx, ErrorFailedToListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.CreatedAt); err != nil {
			log.Error(ctx, ErrorFailedToScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrorFailedToScanNote, err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrorFailedToIterateRows, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToIterateRows, err)
	}

	return notes, nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDelete))

	result, err := r.db.Exec(ctx, queryDeleteNote, id)
	if err != nil {
		log.Error(ctx, ErrorFailedToDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDeleteNote, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("note_id", id))
		return repositories.ErrNoteNotFound
	}

	return nil
}
