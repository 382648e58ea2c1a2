// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"strings"
	"time"
)

// Note - сохраненная заметка.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote создает заметку без id. Текст обрезается по краям, время берется в UTC.
func NewNote(content string) *Note {
	return &Note{
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	}
}
