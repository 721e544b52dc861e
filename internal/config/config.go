package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	API      APIConfig      `mapstructure:"api"      validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	Environment            string `mapstructure:"environment"              validate:"required,oneof=local development testing production"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds"     validate:"gte=1"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds"    validate:"gte=1"`
	IdleTimeoutSeconds     int    `mapstructure:"idle_timeout_seconds"     validate:"gte=1"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// DatabaseConfig contains all database-related configuration settings.
// Driver selects between PostgreSQL (pgx) and an embedded SQLite file.
type DatabaseConfig struct {
	Driver                 string `mapstructure:"driver"                    validate:"required,oneof=pgx sqlite"`
	URL                    string `mapstructure:"url"                       validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                 string `mapstructure:"jwt_secret"                   validate:"required,min=32"`
	TokenLifetimeMinutes      int    `mapstructure:"token_lifetime_minutes"       validate:"required,min=1,max=525600"`
	BcryptCost                int    `mapstructure:"bcrypt_cost"                  validate:"required,min=4,max=31"`
	ResetTokenLifetimeMinutes int    `mapstructure:"reset_token_lifetime_minutes" validate:"required,min=1"`
	// ExposeResetToken returns generated reset tokens in the API response
	// instead of mailing them. Only meant for local development.
	ExposeResetToken bool `mapstructure:"expose_reset_token"`
}

// APIConfig contains request-handling limits.
type APIConfig struct {
	TasksPerPage       int `mapstructure:"tasks_per_page"        validate:"required,min=1,max=100"`
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" validate:"required,min=1"`
}

// MailConfig selects how password reset tokens are delivered.
type MailConfig struct {
	Driver       string `mapstructure:"driver"        validate:"required,oneof=log smtp"`
	SMTPHost     string `mapstructure:"smtp_host"     validate:"required_if=Driver smtp"`
	SMTPPort     int    `mapstructure:"smtp_port"     validate:"gt=0,lt=65536"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"  validate:"required_if=Driver smtp"`
}

// TokenLifetime is the validity period of issued bearer tokens.
func (c AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}

// ResetTokenLifetime is the validity period of password reset tokens.
func (c AuthConfig) ResetTokenLifetime() time.Duration {
	return time.Duration(c.ResetTokenLifetimeMinutes) * time.Minute
}

// ConnMaxLifetime is the maximum age of a pooled database connection.
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}
