package config

import "time"

// ServiceConfig описывает удаленный сервис заметок.
type ServiceConfig struct {
	URL     string        `yaml:"url" env:"NOTESYNC_SERVICE_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env:"NOTESYNC_SERVICE_TIMEOUT" env-default:"10s"`
}
