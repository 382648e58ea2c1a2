package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"notesync/internal/noteserver/config"
	"notesync/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogNotesSchemaUpToDate = "notes schema is already up to date"
	LogNotesSchemaMigrated = "notes schema migrated"
)

// Константы для сообщений об ошибках.
const (
	ErrOpenMigrations  = "failed to open notes migrations"
	ErrRunMigrations   = "failed to run notes migrations"
	ErrSchemaVersion   = "failed to read notes schema version"
	ErrDirtyMigrations = "notes schema is dirty"
)

// Migrate приводит схему заметок к последней версии из cfg.MigrationsPath.
// Схема в состоянии dirty считается ошибкой: ее нужно чинить вручную.
func Migrate(ctx context.Context, cfg *config.PostgresConfig) error {
	source, err := MigrationsURL(cfg.MigrationsPath)
	if err != nil {
		return err
	}
	log := logger.Log(ctx).With(zap.String("migrations_path", source))

	m, err := migrate.New(source, cfg.GetConnectionURL())
	if err != nil {
		log.Error(ctx, ErrOpenMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrOpenMigrations, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn(ctx, "closing migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info(ctx, LogNotesSchemaUpToDate)
		return nil
	case err != nil:
		log.Error(ctx, ErrRunMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrRunMigrations, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSchemaVersion, err)
	}
	if dirty {
		return fmt.Errorf("%s: version %d", ErrDirtyMigrations, version)
	}

	log.Info(ctx, LogNotesSchemaMigrated, zap.Uint("version", version))
	return nil
}
