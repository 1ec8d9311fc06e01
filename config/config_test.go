package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Port != "9090" {
		t.Errorf("Service.Port = %s, want 9090", cfg.Service.Port)
	}
	if cfg.Auth.AccessTokenTTL != 30*time.Minute {
		t.Errorf("Auth.AccessTokenTTL = %v, want 30m", cfg.Auth.AccessTokenTTL)
	}
	if !cfg.Auth.ProfileSelfOnly {
		t.Error("PROFILE_SELF_ONLY should default to true")
	}
	if cfg.Database.MaxConnections != 25 {
		t.Errorf("Database.MaxConnections = %d, want 25", cfg.Database.MaxConnections)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on an unparsable duration")
	}
}

func validConfig() *Config {
	return &Config{
		Service:             ServiceConfig{Name: "hostel", Port: "8080", Env: "development"},
		Logging:             LoggingConfig{Level: "info", Format: "json"},
		Metrics:             MetricsConfig{Enabled: true, Path: "/metrics"},
		Database:            DatabaseConfig{Host: "db", Port: "5432", Name: "hostel", User: "hostel", MaxConnections: 5},
		Redis:               RedisConfig{Enabled: true, Addr: "redis:6379"},
		Auth:                AuthConfig{JWTSecret: testSecret, AccessTokenTTL: time.Minute},
		ShutdownTimeout:     10 * time.Second,
		ReadinessDrainDelay: 5 * time.Second,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Service.Port = "http" }, wantErr: "PORT must be a valid number"},
		{name: "unknown env", mutate: func(c *Config) { c.Service.Env = "qa" }, wantErr: "ENV must be one of"},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: "JWT_SECRET must be at least 32 bytes"},
		{name: "bad sample rate", mutate: func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Endpoint = "collector:4318"
			c.Tracing.SampleRate = 2
		}, wantErr: "OTEL_SAMPLE_RATE"},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Addr = "" }, wantErr: "REDIS_ADDR"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "LOG_LEVEL"},
		{name: "drain delay too long", mutate: func(c *Config) { c.ReadinessDrainDelay = time.Minute }, wantErr: "READINESS_DRAIN_DELAY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Service.Port = "x"
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"PORT", "DB_HOST"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestBuildDSN(t *testing.T) {
	db := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Name: "n", SSLMode: "disable", MaxConnections: 3}
	want := "postgresql://u:p@h:5432/n?sslmode=disable&pool_max_conns=3"
	if got := db.BuildDSN(); got != want {
		t.Errorf("BuildDSN() = %q, want %q", got, want)
	}
}
