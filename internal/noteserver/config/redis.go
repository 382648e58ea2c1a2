package config

import (
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию кэша сводки в Redis.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"NOTESERVER_REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"NOTESERVER_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"NOTESERVER_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"NOTESERVER_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"NOTESERVER_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"NOTESERVER_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"NOTESERVER_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"NOTESERVER_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"NOTESERVER_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"NOTESERVER_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"NOTESERVER_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"NOTESERVER_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	SummaryTTL      time.Duration `yaml:"summary_ttl" env:"NOTESERVER_REDIS_SUMMARY_TTL" env-default:"10m"`
}

// GetAddress возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddress() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
