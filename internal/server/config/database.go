package config

import "fmt"

// DatabaseConfig is the PostgreSQL configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"NOTEBOARD_DB_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"NOTEBOARD_DB_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"NOTEBOARD_DB_USER" env-default:"noteboard"`
	Password       string `yaml:"password" env:"NOTEBOARD_DB_PASSWORD" env-default:"noteboard"`
	Name           string `yaml:"name" env:"NOTEBOARD_DB_NAME" env-default:"noteboard"`
	SSLMode        string `yaml:"ssl_mode" env:"NOTEBOARD_DB_SSL_MODE" env-default:"disable"`
	MinConns       int    `yaml:"min_conns" env:"NOTEBOARD_DB_MIN_CONNS" env-default:"1"`
	MaxConns       int    `yaml:"max_conns" env:"NOTEBOARD_DB_MAX_CONNS" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"NOTEBOARD_DB_MIGRATIONS_PATH" env-default:"file://migrations"`
}

// GetDSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}
