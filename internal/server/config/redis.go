package config

import (
	"fmt"
	"time"
)

// RedisConfig is the configuration of the list cache. When disabled the
// server runs straight against the database.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"NOTEBOARD_REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"NOTEBOARD_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"NOTEBOARD_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"NOTEBOARD_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"NOTEBOARD_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"NOTEBOARD_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"NOTEBOARD_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"NOTEBOARD_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"NOTEBOARD_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"NOTEBOARD_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"NOTEBOARD_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"NOTEBOARD_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"NOTEBOARD_REDIS_DEFAULT_TTL" env-default:"15m"`
}

// GetAddress returns the Redis address.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
