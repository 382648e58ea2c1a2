// Package services описывает сервисы клиента, доступные внешним адаптерам.
package services

import (
	"context"

	"notesync/internal/notesync/app"
	"notesync/internal/notesync/domain/entities"
)

// SyncService - действия пользователя над локальным кэшем заметок.
// Результат каждого действия отражается в снимке состояния, а не в ошибке.
type SyncService interface {
	Snapshot() app.State
	SetDraft(text string)
	SubmitDraft(ctx context.Context)
	Refresh(ctx context.Context)
	Create(ctx context.Context, text string)
	Delete(ctx context.Context, id entities.NoteID)
	Summarize(ctx context.Context)
}

var _ SyncService = (*app.SyncController)(nil)
