package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "notesync/internal/notesync/adapters/http"
	"notesync/internal/notesync/app"
	"notesync/internal/notesync/domain/entities"
)

type mockSyncService struct {
	mock.Mock
}

func (m *mockSyncService) Snapshot() app.State {
	return m.Called().Get(0).(app.State)
}

func (m *mockSyncService) SetDraft(text string) {
	m.Called(text)
}

func (m *mockSyncService) SubmitDraft(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockSyncService) Refresh(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockSyncService) Create(ctx context.Context, text string) {
	m.Called(ctx, text)
}

func (m *mockSyncService) Delete(ctx context.Context, id entities.NoteID) {
	m.Called(ctx, id)
}

func (m *mockSyncService) Summarize(ctx context.Context) {
	m.Called(ctx)
}

var sampleState = app.State{
	Notes:  entities.NoteCollection{{ID: "2", Content: "B"}, {ID: "1", Content: "A"}},
	Draft:  "draft",
	Status: app.StatusIdle,
	Error:  "failed to save note: service down",
}

func newTestApp(svc *mockSyncService) *fiber.App {
	application := fiber.New()
	httpapi.SetupRouter(application, svc)
	return application
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMocks func(m *mockSyncService)
	}{
		{
			name:   "state",
			method: http.MethodGet,
			path:   "/state",
		},
		{
			name:   "set draft",
			method: http.MethodPut,
			path:   "/draft",
			body:   `{"text": "hello"}`,
			setupMocks: func(m *mockSyncService) {
				m.On("SetDraft", "hello").Once()
			},
		},
		{
			name:   "submit draft",
			method: http.MethodPost,
			path:   "/draft/submit",
			setupMocks: func(m *mockSyncService) {
				m.On("SubmitDraft", mock.Anything).Once()
			},
		},
		{
			name:   "refresh",
			method: http.MethodPost,
			path:   "/refresh",
			setupMocks: func(m *mockSyncService) {
				m.On("Refresh", mock.Anything).Once()
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/notes",
			body:   `{"content": "C"}`,
			setupMocks: func(m *mockSyncService) {
				m.On("Create", mock.Anything, "C").Once()
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/notes/7",
			setupMocks: func(m *mockSyncService) {
				m.On("Delete", mock.Anything, entities.NoteID("7")).Once()
			},
		},
		{
			name:   "delete escaped id",
			method: http.MethodDelete,
			path:   "/notes/a%20b",
			setupMocks: func(m *mockSyncService) {
				m.On("Delete", mock.Anything, entities.NoteID("a b")).Once()
			},
		},
		{
			name:   "summarize",
			method: http.MethodPost,
			path:   "/summary",
			setupMocks: func(m *mockSyncService) {
				m.On("Summarize", mock.Anything).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockSyncService)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			svc.On("Snapshot").Return(sampleState).Once()

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")

			resp, err := newTestApp(svc).Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode, "controller errors do not change the HTTP status")

			var got struct {
				Notes  []entities.Note `json:"notes"`
				Draft  string          `json:"draft"`
				Status string          `json:"status"`
				Error  string          `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Len(t, got.Notes, 2)
			assert.Equal(t, "idle", got.Status)
			assert.Equal(t, sampleState.Error, got.Error)

			svc.AssertExpectations(t)
		})
	}
}

func TestMalformedBodies(t *testing.T) {
	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, "/draft"},
		{http.MethodPost, "/notes"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc := new(mockSyncService)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"text": `))
			req.Header.Set("Content-Type", "application/json")

			resp, err := newTestApp(svc).Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			svc.AssertNotCalled(t, "SetDraft", mock.Anything)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "Snapshot")
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	resp, err := newTestApp(new(mockSyncService)).Test(httptest.NewRequest(http.MethodGet, "/unknown", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Маршруты работают с настоящим контроллером: ошибка сервиса видна в снимке.
func TestRoutesWithController(t *testing.T) {
	notesAPI := &failingNotesAPI{}
	application := fiber.New()
	httpapi.SetupRouter(application, app.NewSyncController(notesAPI))

	resp, err := application.Test(httptest.NewRequest(http.MethodPost, "/refresh", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, "idle", state["status"])
	assert.Contains(t, state["error"], app.ErrorFailedToFetchNotes)
	assert.Nil(t, state["summary"])
}

type failingNotesAPI struct{}

var errUnavailable = io.ErrUnexpectedEOF

func (failingNotesAPI) ListNotes(context.Context) ([]entities.Note, error) {
	return nil, errUnavailable
}

func (failingNotesAPI) CreateNote(context.Context, string) (entities.Note, error) {
	return entities.Note{}, errUnavailable
}

func (failingNotesAPI) DeleteNote(context.Context, entities.NoteID) error {
	return errUnavailable
}

func (failingNotesAPI) GetSummary(context.Context) (entities.Summary, error) {
	return entities.Summary{}, errUnavailable
}
