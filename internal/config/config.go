// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	SRS    SRSConfig    `mapstructure:"srs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SRSConfig overrides the spaced-repetition scheduling parameters.
// Zero values keep the algorithm defaults (ease floor 1.3, intervals
// 1 and 6 days, pass at quality 3).
type SRSConfig struct {
	MinEaseFactor  float64 `mapstructure:"min_ease_factor" validate:"omitempty,gt=1"`
	FirstInterval  int     `mapstructure:"first_interval"  validate:"omitempty,gte=1"`
	SecondInterval int     `mapstructure:"second_interval" validate:"omitempty,gte=1"`
	PassThreshold  int     `mapstructure:"pass_threshold"  validate:"omitempty,gte=1,lte=5"`
}
