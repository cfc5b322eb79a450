package config

// LoggingConfig is the logger configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTEBOARD_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTEBOARD_LOGGER_MODE" env-default:"production"`
}
