package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/config"
	"github.com/shelfmate/catalog/internal/model"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Connect opens the configured database. Duplicate-key errors are translated
// to gorm.ErrDuplicatedKey on both drivers so the repositories can report
// conflicts uniformly.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		return connectSQLite(cfg.SQLitePath)
	case "postgres":
		return connectWithRetry(cfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func connectSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

func connectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", defaultMaxAttempts).
			Msg("db not ready")
		time.Sleep(defaultDelayBetweenTry)
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", defaultMaxAttempts, err)
}

// Migrate creates or updates the schema for every catalog model, including
// the book_authors and book_genres join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}

// Reset drops every table and recreates the schema from scratch.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable("book_authors", "book_genres"); err != nil {
		return err
	}
	if err := db.Migrator().DropTable(model.All()...); err != nil {
		return err
	}
	return Migrate(db)
}
