package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config application settings
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	GitHub   GitHubConfig
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	GinMode         string        `env:"GIN_MODE" envDefault:"debug"`
	Version         string        `env:"APP_VERSION" envDefault:"dev"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// DatabaseConfig database settings
type DatabaseConfig struct {
	Driver             string        `env:"DB_DRIVER" envDefault:"sqlite"`
	Host               string        `env:"DB_HOST" envDefault:"localhost"`
	Port               string        `env:"DB_PORT"`
	Username           string        `env:"DB_USER" envDefault:"root"`
	Password           string        `env:"DB_PASSWORD"`
	DBName             string        `env:"DB_NAME" envDefault:"devconnect"`
	Path               string        `env:"DB_PATH" envDefault:"devconnect.db"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	MaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS" envDefault:"100"`
	MaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	SlowQueryThreshold time.Duration `env:"DB_SLOW_QUERY_THRESHOLD" envDefault:"1s"`
	LogLevel           string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

// AuthConfig authentication settings
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

// GitHubConfig settings for the public repository listing lookup
type GitHubConfig struct {
	APIURL    string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	Token     string        `env:"GITHUB_TOKEN"`
	Timeout   time.Duration `env:"GITHUB_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"GITHUB_USER_AGENT" envDefault:"devconnect"`
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.GitHub.APIURL = strings.TrimRight(cfg.GitHub.APIURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no sensible default.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// DSN builds the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverMySQL:
		port := d.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			d.Username, d.Password, d.Host, port, d.DBName)
	case DriverPostgres:
		port := d.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, port, d.Username, d.Password, d.DBName)
	default:
		return d.Path
	}
}
