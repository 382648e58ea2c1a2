package app

import (
	"fmt"

	"notesync/internal/notesync/domain/entities"
)

// Status - общий для всех действий признак выполняющегося запроса.
type Status int

// Состояния запроса.
const (
	StatusIdle Status = iota
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusBusy:
		return "busy"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText кодирует статус строкой.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Action - пользовательское действие контроллера.
type Action string

// Действия контроллера.
const (
	ActionRefresh   Action = "refresh"
	ActionCreate    Action = "create"
	ActionDelete    Action = "delete"
	ActionSummarize Action = "summarize"
)

// Сообщения, показываемые пользователю при неудаче действия.
const (
	ErrorFailedToFetchNotes = "failed to fetch notes"
	ErrorFailedToSaveNote   = "failed to save note"
	ErrorFailedToDeleteNote = "failed to delete note"
	ErrorFailedToGetSummary = "failed to get summary"
)

var failureMessages = map[Action]string{
	ActionRefresh:   ErrorFailedToFetchNotes,
	ActionCreate:    ErrorFailedToSaveNote,
	ActionDelete:    ErrorFailedToDeleteNote,
	ActionSummarize: ErrorFailedToGetSummary,
}

// OperationError - единственный вид ошибки контроллера: действие не удалось.
// Сетевые сбои, коды вне 2xx и некорректный JSON сводятся к нему.
type OperationError struct {
	Action Action
	Err    error
}

func (e *OperationError) Error() string {
	msg, ok := failureMessages[e.Action]
	if !ok {
		msg = "operation failed"
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// State - снимок состояния контроллера для слоя представления.
type State struct {
	Notes   entities.NoteCollection `json:"notes"`
	Draft   string                  `json:"draft"`
	Summary *string                 `json:"summary"`
	Status  Status                  `json:"status"`
	Error   string                  `json:"error,omitempty"`
}

// Busy сообщает, выполняется ли запрос.
func (s State) Busy() bool {
	return s.Status == StatusBusy
}

// CanSave повторяет правило доступности кнопки сохранения.
func (s State) CanSave() bool {
	return !s.Busy() && hasText(s.Draft)
}

// CanSummarize повторяет правило доступности кнопки сводки.
func (s State) CanSummarize() bool {
	return !s.Busy() && len(s.Notes) > 0
}
