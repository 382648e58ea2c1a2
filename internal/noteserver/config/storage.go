package config

import "fmt"

// Драйверы хранилища заметок.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// StorageConfig выбирает реализацию хранилища заметок.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"NOTESERVER_STORAGE_DRIVER" env-default:"memory"`
}

// Validate проверяет, что драйвер поддерживается.
func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case DriverMemory, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("%s: %q", ErrUnsupportedDriver, c.Driver)
	}
}
