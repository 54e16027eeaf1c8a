package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the whole application configuration, populated from
// environment variables (a .env file is loaded into the environment first).
type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log"`
}

type AppConfig struct {
	Name        string `koanf:"name" validate:"required"`
	Environment string `koanf:"environment" validate:"oneof=development staging production test"`
	Port        string `koanf:"port" validate:"required,numeric"`
	Version     string `koanf:"version"`
	// comma separated, "*" allows any origin
	AllowedOrigins string `koanf:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"oneof=postgres sqlite"`

	Host              string        `koanf:"host" validate:"required_if=Driver postgres"`
	Port              int           `koanf:"port" validate:"min=1,max=65535"`
	User              string        `koanf:"user"`
	Password          string        `koanf:"password"`
	Name              string        `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode           string        `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int           `koanf:"max_conns" validate:"min=1"`
	MinConns          int           `koanf:"min_conns" validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime   time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime   time.Duration `koanf:"max_conn_idle_time"`
	HealthCheckPeriod time.Duration `koanf:"health_check_period"`
	MaxRetries        int           `koanf:"max_retries" validate:"min=1"`
	RetryDelay        time.Duration `koanf:"retry_delay"`
	ConnectTimeout    time.Duration `koanf:"connect_timeout"`

	SQLitePath  string `koanf:"sqlite_path" validate:"required_if=Driver sqlite"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

type RedisConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Host     string        `koanf:"host" validate:"required_if=Enabled true"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db" validate:"min=0"`
	TTL      time.Duration `koanf:"ttl"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// envKeys maps every supported variable onto its koanf path.
// Variables not listed here are ignored.
var envKeys = map[string]string{
	"APP_NAME":             "app.name",
	"APP_ENV":              "app.environment",
	"APP_PORT":             "app.port",
	"APP_VERSION":          "app.version",
	"CORS_ALLOWED_ORIGINS": "app.allowed_origins",

	"DB_DRIVER":              "database.driver",
	"DB_HOST":                "database.host",
	"DB_PORT":                "database.port",
	"DB_USER":                "database.user",
	"DB_PASSWORD":            "database.password",
	"DB_NAME":                "database.name",
	"DB_SSLMODE":             "database.ssl_mode",
	"DB_MAX_CONNECTIONS":     "database.max_conns",
	"DB_MIN_CONNECTIONS":     "database.min_conns",
	"DB_MAX_CONN_LIFETIME":   "database.max_conn_lifetime",
	"DB_MAX_CONN_IDLE_TIME":  "database.max_conn_idle_time",
	"DB_HEALTH_CHECK_PERIOD": "database.health_check_period",
	"DB_MAX_RETRIES":         "database.max_retries",
	"DB_RETRY_DELAY":         "database.retry_delay",
	"DB_CONNECT_TIMEOUT":     "database.connect_timeout",
	"DB_SQLITE_PATH":         "database.sqlite_path",
	"DB_AUTO_MIGRATE":        "database.auto_migrate",

	"REDIS_ENABLED":  "redis.enabled",
	"REDIS_HOST":     "redis.host",
	"REDIS_PASSWORD": "redis.password",
	"REDIS_DB":       "redis.db",
	"REDIS_TTL":      "redis.ttl",

	"LOG_LEVEL": "log.level",
}

var defaults = map[string]interface{}{
	"app.name":            "Biblioteca API",
	"app.environment":     "development",
	"app.port":            "8080",
	"app.version":         "1.0.0",
	"app.allowed_origins": "*",

	"database.driver":              "sqlite",
	"database.host":                "localhost",
	"database.port":                5432,
	"database.user":                "biblioteca",
	"database.name":                "biblioteca_dev",
	"database.ssl_mode":            "disable",
	"database.max_conns":           25,
	"database.min_conns":           5,
	"database.max_conn_lifetime":   "5m",
	"database.max_conn_idle_time":  "1m",
	"database.health_check_period": "1m",
	"database.max_retries":         5,
	"database.retry_delay":         "1s",
	"database.connect_timeout":     "10s",
	"database.sqlite_path":         "biblioteca.db",
	"database.auto_migrate":        true,

	"redis.enabled": false,
	"redis.host":    "localhost:6379",
	"redis.db":      0,
	"redis.ttl":     "15m",

	"log.level": "info",
}

// Load reads the environment over the defaults and validates the result
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate applies the struct tags plus the rules that span sections
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.IsProduction() && c.Database.Driver == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Origins splits CORS_ALLOWED_ORIGINS, dropping blanks
func (a AppConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(a.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
