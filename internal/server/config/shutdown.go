package config

import "time"

// ShutdownConfig is the graceful shutdown configuration.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"NOTEBOARD_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout returns the shutdown timeout as a Duration.
func (c *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
