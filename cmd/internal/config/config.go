package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Port                  string
	Env                   string
	LogLevel              string
	CORSOrigins           []string
	DefaultDoctorPassword string
	Database              DatabaseConfig
	Redis                 RedisConfig
	Auth                  AuthConfig
}

type DatabaseConfig struct {
	Driver       string
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	URL             string
	AvailabilityTTL time.Duration
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

type AuthConfig struct {
	Enforced bool
	Secret   string
	TokenTTL time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "6060")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DEFAULT_DOCTOR_PASSWORD", "doctor123")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "./hospital.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("DB_MAX_IDLE_CONNS", 1)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("AVAILABILITY_CACHE_TTL", "5m")
	v.SetDefault("AUTH_ENFORCED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")

	cfg := &Config{
		Port:                  v.GetString("PORT"),
		Env:                   v.GetString("ENV"),
		LogLevel:              strings.ToLower(v.GetString("LOG_LEVEL")),
		CORSOrigins:           splitList(v.GetString("CORS_ORIGINS")),
		DefaultDoctorPassword: v.GetString("DEFAULT_DOCTOR_PASSWORD"),
		Database: DatabaseConfig{
			Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
			URL:          v.GetString("DATABASE_URL"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Redis: RedisConfig{
			URL:             v.GetString("REDIS_URL"),
			AvailabilityTTL: v.GetDuration("AVAILABILITY_CACHE_TTL"),
		},
		Auth: AuthConfig{
			Enforced: v.GetBool("AUTH_ENFORCED"),
			Secret:   v.GetString("JWT_SECRET"),
			TokenTTL: v.GetDuration("JWT_TTL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("DB_DRIVER must be one of %q, %q or %q, got %q",
			DriverSQLite, DriverPostgres, DriverMySQL, c.Database.Driver)
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Auth.Enforced && c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET must be set when AUTH_ENFORCED is true")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// TokenSecret returns the signing key for login tokens. Development runs
// without a configured secret fall back to a fixed key.
func (c *Config) TokenSecret() string {
	if c.Auth.Secret == "" && c.IsDev() {
		return "development-only-secret"
	}
	return c.Auth.Secret
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
