// Package config содержит конфигурацию клиента синхронизации заметок.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "notesync/pkg/config"
	"notesync/pkg/logger"
)

// ServiceName используется в логах и в имени переменной NOTESYNC_CONFIG_FILE.
const ServiceName = "notesync"

// Константы ошибок и сообщений для конфигурации.
const (
	LogConfigLoaded     = "notesync configuration loaded"
	ErrFailedLoadConfig = "failed to load notesync configuration"
)

// Config представляет полную конфигурацию клиента.
type Config struct {
	Service        ServiceConfig  `yaml:"service"`
	HTTP           HTTPConfig     `yaml:"http"`
	Logging        LoggingConfig  `yaml:"logging"`
	Shutdown       ShutdownConfig `yaml:"shutdown"`
	RefreshOnStart bool           `yaml:"refresh_on_start" env:"NOTESYNC_REFRESH_ON_START" env-default:"true"`
}

// Load загружает конфигурацию из переменных окружения или файла.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("service_url", cfg.Service.URL),
		zap.Duration("service_timeout", cfg.Service.Timeout),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.Bool("refresh_on_start", cfg.RefreshOnStart))

	return cfg, nil
}
