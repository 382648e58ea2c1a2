// Package cache определяет интерфейс кэша сводки.
package cache

import "context"

// SummaryCache хранит последнюю построенную сводку.
type SummaryCache interface {
	// GetSummary возвращает сводку и признак ее наличия в кэше.
	GetSummary(ctx context.Context) (string, bool, error)

	SetSummary(ctx context.Context, summary string) error

	// Invalidate удаляет сводку после изменения набора заметок.
	Invalidate(ctx context.Context) error

	Close() error
}
