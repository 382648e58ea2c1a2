// Package entities описывает записи удаленного сервиса заметок в том виде,
// в котором их кэширует клиент.
package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Ошибки декодирования ответов сервиса.
var (
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidNoteID = errors.New("invalid note id")
)

// NoteID - непрозрачный идентификатор заметки, назначаемый сервером.
// В JSON допускается строка или целое число.
type NoteID string

// UnmarshalJSON принимает строковый или числовой идентификатор.
func (id *NoteID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return fmt.Errorf("%w: %s", ErrInvalidNoteID, trimmed)
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidNoteID, err)
		}
		if s == "" {
			return fmt.Errorf("%w: empty string", ErrInvalidNoteID)
		}
		*id = NoteID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNoteID, err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("%w: %s is not an integer", ErrInvalidNoteID, n)
	}
	*id = NoteID(n.String())
	return nil
}

// String возвращает идентификатор в виде строки.
func (id NoteID) String() string {
	return string(id)
}

// Note - кэшированная копия заметки сервера.
type Note struct {
	ID      NoteID `json:"id"`
	Content string `json:"content"`
}

// UnmarshalJSON требует наличия полей id и content.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      *NoteID `json:"id"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == nil {
		return fmt.Errorf("note: %w: id", ErrMissingField)
	}
	if raw.Content == nil {
		return fmt.Errorf("note: %w: content", ErrMissingField)
	}

	n.ID = *raw.ID
	n.Content = *raw.Content
	return nil
}

// Summary - сводка по всем заметкам, вычисленная сервером.
type Summary struct {
	Text string `json:"summary"`
}

// UnmarshalJSON требует наличия поля summary.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var raw struct {
		Summary *string `json:"summary"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Summary == nil {
		return fmt.Errorf("summary: %w: summary", ErrMissingField)
	}

	s.Text = *raw.Summary
	return nil
}

// CreateNoteRequest - тело запроса на создание заметки.
type CreateNoteRequest struct {
	Content string `json:"content"`
}
