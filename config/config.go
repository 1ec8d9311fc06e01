// Package config provides centralized configuration for the hostel service
// with validation and clear documentation for operators.
//
// Configuration Sources (12-factor app principles):
//  1. Default values (struct tags)
//  2. .env file (local development via godotenv)
//  3. Environment variables (container runtime)
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// minJWTSecretBytes is the shortest HS256 signing key accepted.
const minJWTSecretBytes = 32

// Config holds all configuration for the service
type Config struct {
	Service   ServiceConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Logging   LoggingConfig
	Metrics   MetricsConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// ReadinessDrainDelay is the pause between failing /ready and shutting the server down,
	// so load balancers stop routing new traffic first.
	ReadinessDrainDelay time.Duration `envconfig:"READINESS_DRAIN_DELAY" default:"5s"`
}

// ServiceConfig defines basic service configuration
type ServiceConfig struct {
	Name    string `envconfig:"SERVICE_NAME" default:"hostel"`
	Port    string `envconfig:"PORT" default:"8080"`
	Version string `envconfig:"VERSION" default:"dev"`
	Env     string `envconfig:"ENV" default:"development"`
}

// TracingConfig defines OpenTelemetry tracing configuration
type TracingConfig struct {
	Enabled            bool    `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint           string  `envconfig:"OTEL_COLLECTOR_ENDPOINT" default:"localhost:4318"`
	SampleRate         float64 `envconfig:"OTEL_SAMPLE_RATE" default:"0.1"`
	MaxExportBatchSize int     `envconfig:"OTEL_BATCH_SIZE" default:"512"`
}

// ProfilingConfig defines Pyroscope continuous profiling configuration
type ProfilingConfig struct {
	Enabled  bool   `envconfig:"PROFILING_ENABLED" default:"false"`
	Endpoint string `envconfig:"PYROSCOPE_ENDPOINT" default:"http://localhost:4040"`
}

// LoggingConfig defines structured logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`   // debug, info, warn, error
	Format string `envconfig:"LOG_FORMAT" default:"json"` // json, console
}

// MetricsConfig defines Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

// DatabaseConfig defines PostgreSQL database configuration
type DatabaseConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	Name           string `envconfig:"DB_NAME" default:"hostel"`
	User           string `envconfig:"DB_USER" default:"hostel"`
	Password       string `envconfig:"DB_PASSWORD"`
	SSLMode        string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConnections int    `envconfig:"DB_POOL_MAX_CONNECTIONS" default:"25"`
	// AutoMigrate applies the embedded schema on startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// BuildDSN constructs the PostgreSQL connection string from config
func (c *DatabaseConfig) BuildDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode, c.MaxConnections)
}

// RedisConfig defines the Redis connection used for token revocation
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AuthConfig defines caller authentication settings
type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TTL" default:"15m"`
	BcryptCost     int           `envconfig:"BCRYPT_COST" default:"10"`
	// ProfileSelfOnly restricts /user-profile/{id} to the caller's own id.
	ProfileSelfOnly bool `envconfig:"PROFILE_SELF_ONLY" default:"true"`
}

// Load reads configuration from the environment. A .env file, when present,
// is loaded first; real environment variables take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// Validate performs validation of all configuration fields and reports every
// problem at once.
func (c *Config) Validate() error {
	var errors []string

	if c.Service.Name == "" {
		errors = append(errors, "SERVICE_NAME is required (e.g., 'hostel')")
	}
	if _, err := strconv.Atoi(c.Service.Port); err != nil {
		errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Service.Port))
	}
	validEnvs := []string{"development", "dev", "staging", "stage", "production", "prod", "test"}
	if !contains(validEnvs, c.Service.Env) {
		errors = append(errors, fmt.Sprintf("ENV must be one of %v, got: %s", validEnvs, c.Service.Env))
	}

	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			errors = append(errors, "OTEL_COLLECTOR_ENDPOINT is required when tracing is enabled")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1.0 {
			errors = append(errors, fmt.Sprintf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got: %.2f", c.Tracing.SampleRate))
		}
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		errors = append(errors, "PYROSCOPE_ENDPOINT is required when profiling is enabled")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.Logging.Level) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of %v, got: %s", validLogLevels, c.Logging.Level))
	}
	validLogFormats := []string{"json", "console"}
	if !contains(validLogFormats, c.Logging.Format) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of %v, got: %s", validLogFormats, c.Logging.Format))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errors = append(errors, fmt.Sprintf("METRICS_PATH must start with '/', got: %s", c.Metrics.Path))
	}

	if c.Database.Host == "" {
		errors = append(errors, "DB_HOST is required")
	}
	if c.Database.Name == "" {
		errors = append(errors, "DB_NAME is required")
	}
	if c.Database.User == "" {
		errors = append(errors, "DB_USER is required")
	}
	if _, err := strconv.Atoi(c.Database.Port); err != nil {
		errors = append(errors, fmt.Sprintf("DB_PORT must be a valid number, got: %s", c.Database.Port))
	}
	if c.Database.MaxConnections <= 0 {
		errors = append(errors, fmt.Sprintf("DB_POOL_MAX_CONNECTIONS must be positive, got: %d", c.Database.MaxConnections))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		errors = append(errors, "REDIS_ADDR is required when Redis is enabled")
	}

	if len(c.Auth.JWTSecret) < minJWTSecretBytes {
		errors = append(errors, fmt.Sprintf("JWT_SECRET must be at least %d bytes", minJWTSecretBytes))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("JWT_ACCESS_TTL must be positive, got: %s", c.Auth.AccessTokenTTL))
	}

	if c.ShutdownTimeout <= 0 || c.ShutdownTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("SHUTDOWN_TIMEOUT must be within (0, 1m], got: %s", c.ShutdownTimeout))
	}
	if c.ReadinessDrainDelay < 0 || c.ReadinessDrainDelay > 30*time.Second {
		errors = append(errors, fmt.Sprintf("READINESS_DRAIN_DELAY must be within [0, 30s], got: %s", c.ReadinessDrainDelay))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Service.Env)
	return env == "development" || env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Service.Env)
	return env == "production" || env == "prod"
}

// contains checks if a string slice contains a specific value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
