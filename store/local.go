package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrewpaige1/flashnotes/config"
	"github.com/andrewpaige1/flashnotes/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocalNamespace is the single key the local store keeps the card list under.
const LocalNamespace = "flashcards"

// LocalStore keeps the whole card list as one JSON value in a key/value
// table, without any per-user partitioning.
type LocalStore struct {
	db *gorm.DB
}

// NewLocalStore wraps a database that already has the local_entries table.
func NewLocalStore(db *gorm.DB) *LocalStore {
	return &LocalStore{db: db}
}

// OpenLocal opens (creating if needed) the local store at path.
func OpenLocal(path string) (*LocalStore, error) {
	db, err := config.Connect(path, &models.LocalEntry{})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return NewLocalStore(db), nil
}

// Read returns the stored list. A missing or malformed value reads as empty.
func (s *LocalStore) Read(ctx context.Context) ([]models.Flashcard, error) {
	var entry models.LocalEntry
	err := s.db.WithContext(ctx).Where("namespace = ?", LocalNamespace).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Flashcard{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local store: %w", err)
	}

	var cards []models.Flashcard
	if err := json.Unmarshal([]byte(entry.Value), &cards); err != nil {
		log.Warnf("ignoring malformed local store value: %v", err)
		return []models.Flashcard{}, nil
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return cards, nil
}

// Write replaces the stored list.
func (s *LocalStore) Write(ctx context.Context, cards []models.Flashcard) error {
	if cards == nil {
		cards = []models.Flashcard{}
	}
	value, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode flashcards: %w", err)
	}

	entry := models.LocalEntry{Namespace: LocalNamespace, Value: string(value)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write local store: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (s *LocalStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
