package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesync/internal/noteserver/adapters/postgres"
	"notesync/internal/noteserver/domain/entities"
	"notesync/internal/noteserver/ports/repositories"
	"notesync/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection failed")

const (
	sqlInsert = `INSERT INTO notes (content, created_at) VALUES ($1, $2) RETURNING id, content, created_at`
	sqlSelect = `SELECT id, content, created_at FROM notes ORDER BY id DESC`
	sqlDelete = `DELETE FROM notes WHERE id = $1`
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logger.NewContext(context.Background(), logger.NewNop())
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	note := &entities.Note{Content: "hello", CreatedAt: createdAt}

	tests := []struct {
		name          string
		setupMock     func(mock pgxmock.PgxPoolIface)
		expectedNote  *entities.Note
		expectedError string
	}{
		{
			name: "successful creation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(sqlInsert)).
					WithArgs("hello", createdAt).
					WillReturnRows(pgxmock.NewRows([]string{"id", "content", "created_at"}).
						AddRow(int64(7), "hello", createdAt))
			},
			expectedNote: &entities.Note{ID: 7, Content: "hello", CreatedAt: createdAt},
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(sqlInsert)).
					WithArgs("hello", createdAt).
					WillReturnError(errDatabaseConnection)
			},
			expectedError: postgres.ErrorFailedToCreateNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			stored, err := postgres.NewNoteRepository(mock).Create(ctx, note)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.ErrorIs(t, err, errDatabaseConnection)
				assert.Nil(t, stored)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedNote, stored)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_List(t *testing.T) {
	ctx := testContext(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("returns rows in query order", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlSelect)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "content", "created_at"}).
				AddRow(int64(2), "B", now).
				AddRow(int64(1), "A", now))

		notes, err := postgres.NewNoteRepository(mock).List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, int64(2), notes[0].ID)
		assert.Equal(t, "A", notes[1].Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlSelect)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "content", "created_at"}))

		notes, err := postgres.NewNoteRepository(mock).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlSelect)).WillReturnError(errDatabaseConnection)

		_, err := postgres.NewNoteRepository(mock).List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), postgres.ErrorFailedToListNotes)
	})

	t.Run("row error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlSelect)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "content", "created_at"}).
				AddRow(int64(1), "A", now).
				RowError(0, errDatabaseConnection))

		_, err := postgres.NewNoteRepository(mock).List(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name        string
		setupMock   func(mock pgxmock.PgxPoolIface)
		expectedErr error
	}{
		{
			name: "deleted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(sqlDelete)).
					WithArgs(int64(3)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(sqlDelete)).
					WithArgs(int64(3)).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedErr: repositories.ErrNoteNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(sqlDelete)).
					WithArgs(int64(3)).
					WillReturnError(errDatabaseConnection)
			},
			expectedErr: errDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			err := postgres.NewNoteRepository(mock).Delete(ctx, 3)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
