// Package config предоставляет загрузку конфигурации сервисов
// из переменных окружения и, опционально, из файла.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"notesync/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"

	configFileSuffix = "_CONFIG_FILE"
)

// FileEnv возвращает имя переменной окружения с путем к файлу конфигурации сервиса.
func FileEnv(serviceName string) string {
	return strings.ToUpper(serviceName) + configFileSuffix
}

// Load заполняет T по тегам cleanenv. Если задана переменная <SERVICE>_CONFIG_FILE,
// значения читаются из файла, а переменные окружения имеют приоритет.
func Load[T any](ctx context.Context, serviceName string) (*T, error) {
	log := logger.Log(ctx)

	path := os.Getenv(FileEnv(serviceName))

	log.Info(ctx, msgLoadingConfiguration,
		zap.String(attrService, serviceName),
		zap.String(attrPath, path))

	var cfg T

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, msgFailedLoadConfiguration,
			zap.String(attrService, serviceName),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded, zap.String(attrService, serviceName))

	return &cfg, nil
}
