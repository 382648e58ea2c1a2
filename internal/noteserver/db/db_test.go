package db_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesync/internal/noteserver/config"
	"notesync/internal/noteserver/db"
)

func TestMigrationsURL(t *testing.T) {
	abs, err := db.MigrationsURL("/srv/migrations")
	require.NoError(t, err)
	assert.Equal(t, "file:///srv/migrations", abs)

	rel, err := db.MigrationsURL("migrations/noteserver")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "file://"))
	assert.True(t, filepath.IsAbs(strings.TrimPrefix(rel, "file://")))
	assert.True(t, strings.HasSuffix(rel, filepath.Join("migrations", "noteserver")))
}

func TestNewFailsWithoutMigrations(t *testing.T) {
	cfg := &config.PostgresConfig{
		Host:           "127.0.0.1",
		Port:           1,
		User:           "postgres",
		Password:       "postgres",
		Database:       "notes",
		MinConn:        1,
		MaxConn:        2,
		MigrationsPath: filepath.Join(t.TempDir(), "absent"),
	}

	database, err := db.New(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), db.ErrDBMigrations)
}

func TestMigrate(t *testing.T) {
	base := config.PostgresConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "postgres",
		Password: "postgres",
		Database: "notes",
	}

	t.Run("missing migrations directory", func(t *testing.T) {
		cfg := base
		cfg.MigrationsPath = filepath.Join(t.TempDir(), "absent")

		err := db.Migrate(context.Background(), &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), db.ErrOpenMigrations)
	})

	t.Run("unreachable database", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init.up.sql"), []byte("SELECT 1;"), 0o600))
		cfg := base
		cfg.MigrationsPath = dir

		err := db.Migrate(context.Background(), &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), db.ErrOpenMigrations)
	})
}
