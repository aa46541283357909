package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrewpaige1/flashnotes/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for a database URL. postgres:// and
// postgresql:// URLs go to Postgres; sqlite:// URLs and bare paths go to SQLite.
func Dialector(dbURL string) (gorm.Dialector, error) {
	switch {
	case dbURL == "":
		return nil, fmt.Errorf("database URL is empty")
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return postgres.Open(dbURL), nil
	case strings.HasPrefix(dbURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://")), nil
	case strings.Contains(dbURL, "://"):
		return nil, fmt.Errorf("unsupported database URL scheme: %s", dbURL)
	default:
		return sqlite.Open(dbURL), nil
	}
}

// Connect opens the database behind dbURL and migrates the given models.
func Connect(dbURL string, dst ...interface{}) (*gorm.DB, error) {
	dialector, err := Dialector(dbURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(dst...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return db, nil
}

// ConnectServer opens the API server's database.
func ConnectServer(cfg *Config) (*gorm.DB, error) {
	return Connect(cfg.DBURL, &models.Flashcard{})
}
