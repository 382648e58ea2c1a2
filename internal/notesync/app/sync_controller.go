// Package app содержит контроллер синхронизации: локальный кэш заметок,
// статус запросов и действия пользователя поверх удаленного сервиса.
package app

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"notesync/internal/notesync/domain/entities"
	"notesync/internal/notesync/ports/api"
	"notesync/pkg/logger"
)

// Константы для логирования.
const (
	LogActionStarted   = "sync controller: action started"
	LogActionSucceeded = "sync controller: action succeeded"
	LogActionFailed    = "sync controller: action failed"
	LogActionSkipped   = "sync controller: action skipped"
	LogResultDiscarded = "sync controller: result discarded after close"
)

// Listener получает снимок состояния после каждого перехода.
type Listener func(State)

// SyncController владеет кэшем заметок, черновиком, сводкой, статусом и ошибкой.
//
// Действия не исключают друг друга: мьютекс защищает только локальные переходы
// и никогда не удерживается во время сетевого вызова. Ответы применяются
// в порядке прихода, поэтому Refresh, завершившийся после Create, затирает
// созданную заметку.
type SyncController struct {
	api api.NotesAPI

	mu      sync.Mutex
	notes   entities.NoteCollection
	draft   string
	summary *string
	status  Status
	lastErr *OperationError
	closed  bool

	listeners    map[uint64]Listener
	nextListener uint64
}

// NewSyncController создает контроллер с пустым состоянием.
func NewSyncController(notesAPI api.NotesAPI) *SyncController {
	return &SyncController{
		api:       notesAPI,
		notes:     entities.NoteCollection{},
		status:    StatusIdle,
		listeners: make(map[uint64]Listener),
	}
}

// Snapshot возвращает копию текущего состояния.
func (c *SyncController) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// LastError возвращает ошибку последнего неудачного действия или nil.
func (c *SyncController) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastErr == nil {
		return nil
	}
	return c.lastErr
}

// Subscribe регистрирует слушателя. Возвращаемая функция отменяет подписку.
func (c *SyncController) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Close отключает контроллер: ответы, пришедшие позже, отбрасываются.
func (c *SyncController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.listeners = make(map[uint64]Listener)
}

// SetDraft заменяет текст черновика.
func (c *SyncController) SetDraft(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.draft = text
	state, listeners := c.snapshotLocked(), c.listenersLocked()
	c.mu.Unlock()

	notify(listeners, state)
}

// Refresh заменяет кэш списком заметок сервера.
func (c *SyncController) Refresh(ctx context.Context) {
	c.perform(ctx, ActionRefresh, func(ctx context.Context) (func(), error) {
		notes, err := c.api.ListNotes(ctx)
		if err != nil {
			return nil, err
		}
		return func() {
			c.notes = entities.NewNoteCollection(notes)
		}, nil
	})
}

// Create сохраняет заметку с текстом text. Пустой после обрезки пробелов текст
// игнорируется без запроса. При успехе заметка добавляется в начало кэша,
// а черновик очищается; при неудаче черновик сохраняется.
func (c *SyncController) Create(ctx context.Context, text string) {
	if !hasText(text) {
		logger.Log(ctx).Debug(ctx, LogActionSkipped,
			zap.String("action", string(ActionCreate)),
			zap.String("reason", "empty text"))
		return
	}

	c.perform(ctx, ActionCreate, func(ctx context.Context) (func(), error) {
		note, err := c.api.CreateNote(ctx, text)
		if err != nil {
			return nil, err
		}
		return func() {
			c.notes = c.notes.Prepend(note)
			c.draft = ""
		}, nil
	})
}

// SubmitDraft сохраняет текущий черновик.
func (c *SyncController) SubmitDraft(ctx context.Context) {
	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()

	c.Create(ctx, draft)
}

// Delete удаляет заметку на сервере и затем из кэша.
// Отсутствие id в кэше не является ошибкой.
func (c *SyncController) Delete(ctx context.Context, id entities.NoteID) {
	c.perform(ctx, ActionDelete, func(ctx context.Context) (func(), error) {
		if err := c.api.DeleteNote(ctx, id); err != nil {
			return nil, err
		}
		return func() {
			c.notes = c.notes.Without(id)
		}, nil
	})
}

// Summarize запрашивает сводку. При пустом кэше запрос не выполняется.
// Сводка может устареть после последующих изменений заметок.
func (c *SyncController) Summarize(ctx context.Context) {
	c.mu.Lock()
	empty := len(c.notes) == 0
	c.mu.Unlock()

	if empty {
		logger.Log(ctx).Debug(ctx, LogActionSkipped,
			zap.String("action", string(ActionSummarize)),
			zap.String("reason", "no notes"))
		return
	}

	c.perform(ctx, ActionSummarize, func(ctx context.Context) (func(), error) {
		summary, err := c.api.GetSummary(ctx)
		if err != nil {
			return nil, err
		}
		return func() {
			text := summary.Text
			c.summary = &text
		}, nil
	})
}

// perform выполняет общий цикл действия: busy и сброс ошибки, вызов,
// применение результата или запись ошибки, возврат в idle.
// call возвращает функцию применения, которая выполняется под мьютексом.
func (c *SyncController) perform(
	ctx context.Context,
	action Action,
	call func(ctx context.Context) (func(), error),
) {
	ctx, _ = logger.EnsureRequestID(ctx)
	log := logger.Log(ctx).With(zap.String("action", string(action)))

	if !c.begin() {
		log.Debug(ctx, LogActionSkipped, zap.String("reason", "controller closed"))
		return
	}
	log.Debug(ctx, LogActionStarted)

	var (
		apply func()
		err   error
	)
	defer func() {
		c.complete(ctx, log, action, apply, err)
	}()

	apply, err = call(ctx)
}

func (c *SyncController) begin() bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.status = StatusBusy
	c.lastErr = nil
	state, listeners := c.snapshotLocked(), c.listenersLocked()
	c.mu.Unlock()

	notify(listeners, state)
	return true
}

func (c *SyncController) complete(ctx context.Context, log *logger.Logger, action Action, apply func(), err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		log.Debug(ctx, LogResultDiscarded)
		return
	}

	if err != nil {
		c.lastErr = &OperationError{Action: action, Err: err}
	} else if apply != nil {
		apply()
	}
	c.status = StatusIdle
	state, listeners := c.snapshotLocked(), c.listenersLocked()
	c.mu.Unlock()

	if err != nil {
		log.Warn(ctx, LogActionFailed, zap.Error(err))
	} else {
		log.Info(ctx, LogActionSucceeded, zap.Int("notes", len(state.Notes)))
	}

	notify(listeners, state)
}

func (c *SyncController) snapshotLocked() State {
	state := State{
		Notes:  c.notes.Clone(),
		Draft:  c.draft,
		Status: c.status,
	}
	if c.summary != nil {
		summary := *c.summary
		state.Summary = &summary
	}
	if c.lastErr != nil {
		state.Error = c.lastErr.Error()
	}
	return state
}

func (c *SyncController) listenersLocked() []Listener {
	if len(c.listeners) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []Listener, state State) {
	for _, fn := range listeners {
		fn(state)
	}
}

func hasText(text string) bool {
	return strings.TrimSpace(text) != ""
}
