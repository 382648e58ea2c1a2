package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesync/internal/noteserver/adapters/memory"
	"notesync/internal/noteserver/domain/entities"
	"notesync/internal/noteserver/ports/repositories"
)

func contents(notes []*entities.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Content)
	}
	return out
}

func TestNoteRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := repo.Create(ctx, entities.NewNote("first"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, entities.NewNote("second"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, contents(notes))

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repositories.ErrNoteNotFound)

	third, err := repo.Create(ctx, entities.NewNote("third"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID, "ids are never reused")

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second"}, contents(notes))
}

func TestNoteRepositoryListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()
	_, err := repo.Create(ctx, entities.NewNote("original"))
	require.NoError(t, err)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	notes[0].Content = "changed"

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", notes[0].Content)
}

func TestNoteRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, entities.NewNote("n"))
		}()
	}
	wg.Wait()

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 50)

	seen := make(map[int64]bool)
	for _, n := range notes {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}
