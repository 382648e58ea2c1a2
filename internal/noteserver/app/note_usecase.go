// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"notesync/internal/noteserver/domain/entities"
	"notesync/internal/noteserver/domain/services"
	"notesync/internal/noteserver/ports/cache"
	"notesync/internal/noteserver/ports/repositories"
	"notesync/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrInvalidNoteID = errors.New("invalid note id")
)

// Константы для логирования.
const (
	LogCacheHit               = "summary cache hit"
	LogCacheUnavailable       = "summary cache unavailable"
	LogCacheInvalidateFailed  = "failed to invalidate summary cache"
	LogSummaryOutdated        = "notes changed while building summary, cache not updated"
	ErrorFailedToCreateNote   = "failed to create note"
	ErrorFailedToListNotes    = "failed to list notes"
	ErrorFailedToDeleteNote   = "failed to delete note"
	ErrorFailedToBuildSummary = "failed to build summary"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo   repositories.NoteRepository
	cache      cache.SummaryCache
	summarizer *services.Summarizer

	// revision растет при каждом изменении набора заметок. Сводка попадает
	// в кэш, только если revision не менялась с момента чтения заметок.
	mu       sync.Mutex
	revision uint64
}

// NewNoteUseCase создает NoteUseCase. summaryCache может быть nil.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	summaryCache cache.SummaryCache,
	summarizer *services.Summarizer,
) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:   noteRepo,
		cache:      summaryCache,
		summarizer: summarizer,
	}
}

// ParseNoteID разбирает id заметки из пути запроса.
func ParseNoteID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteID, raw)
	}
	return id, nil
}

// CreateNote сохраняет заметку. Пустой текст допустим.
func (uc *NoteUseCase) CreateNote(ctx context.Context, content string) (*entities.Note, error) {
	note, err := uc.noteRepo.Create(ctx, entities.NewNote(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToCreateNote, err)
	}

	uc.notesChanged(ctx)
	return note, nil
}

// ListNotes возвращает все заметки, новые первыми.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListNotes, err)
	}
	return notes, nil
}

// DeleteNote удаляет заметку по id.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id int64) error {
	if err := uc.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("%s: %w", ErrorFailedToDeleteNote, err)
	}

	uc.notesChanged(ctx)
	return nil
}

// Summary строит сводку по всем заметкам. Готовая сводка берется из кэша,
// сбои кэша не мешают построению.
func (uc *NoteUseCase) Summary(ctx context.Context) (string, error) {
	log := logger.Log(ctx)

	if uc.cache != nil {
		summary, found, err := uc.cache.GetSummary(ctx)
		switch {
		case err != nil:
			log.Warn(ctx, LogCacheUnavailable, zap.Error(err))
		case found:
			log.Debug(ctx, LogCacheHit)
			return summary, nil
		}
	}

	revision := uc.currentRevision()
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorFailedToBuildSummary, err)
	}

	contents := make([]string, 0, len(notes))
	for _, note := range notes {
		contents = append(contents, note.Content)
	}
	summary := uc.summarizer.Summarize(strings.Join(contents, " "))

	if uc.cache != nil {
		uc.storeSummary(ctx, revision, summary)
	}

	return summary, nil
}

func (uc *NoteUseCase) currentRevision() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.revision
}

// storeSummary кладет сводку в кэш, если заметки не менялись с revision.
// Проверка и запись идут под тем же мьютексом, что и сброс кэша в notesChanged.
func (uc *NoteUseCase) storeSummary(ctx context.Context, revision uint64, summary string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logger.Log(ctx)
	if uc.revision != revision {
		log.Debug(ctx, LogSummaryOutdated,
			zap.Uint64("built_at", revision), zap.Uint64("current", uc.revision))
		return
	}
	if err := uc.cache.SetSummary(ctx, summary); err != nil {
		log.Warn(ctx, LogCacheUnavailable, zap.Error(err))
	}
}

// notesChanged вызывается после успешной записи в хранилище.
func (uc *NoteUseCase) notesChanged(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.revision++
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheInvalidateFailed, zap.Error(err))
	}
}
