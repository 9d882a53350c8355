// Package testutil provides shared test helpers backed by a throwaway sqlite database.
package testutil

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"mimarlik-backend/internal/config"
	"mimarlik-backend/internal/database"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB opens a migrated sqlite database in the test's temp dir.
// It is closed automatically when the test finishes.
func TestDB(t *testing.T) *database.Database {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "mimarlik-test.db") + "?_foreign_keys=off&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	wrapped := database.New(db, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	t.Cleanup(func() {
		_ = wrapped.Close()
	})
	return wrapped
}

// TestLogger returns a logger that discards everything below error level.
func TestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.ErrorLevel)
	return log
}
