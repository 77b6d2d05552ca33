// Package testutil builds in-memory databases and configs for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/config"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.Open(sqlite.Open(dsn), logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes writes
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Config returns a valid config for tests. bcrypt runs at its minimum cost.
func Config() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:    "0",
			GinMode: "test",
			Version: "test",
		},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
		},
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		GitHub: config.GitHubConfig{
			APIURL:    "http://127.0.0.1:0",
			Timeout:   time.Second,
			UserAgent: "devconnect-test",
		},
	}
}

// Clock returns a fixed whole-second time and a function to advance it.
func Clock(start time.Time) (now func() time.Time, advance func(time.Duration)) {
	current := start.Truncate(time.Second)
	now = func() time.Time { return current }
	advance = func(d time.Duration) { current = current.Add(d) }
	return now, advance
}
