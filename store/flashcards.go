// Package store persists flashcards, either as server rows (FlashcardStore) or
// as a single locally kept list (LocalStore).
package store

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/flashnotes/models"
	"gorm.io/gorm"
)

// FlashcardStore keeps generated cards as rows.
type FlashcardStore struct {
	db *gorm.DB
}

func NewFlashcardStore(db *gorm.DB) *FlashcardStore {
	return &FlashcardStore{db: db}
}

// Save inserts cards in one transaction and fills in their IDs.
func (s *FlashcardStore) Save(ctx context.Context, cards []models.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&cards).Error
	})
	if err != nil {
		return fmt.Errorf("save flashcards: %w", err)
	}
	return nil
}

// List returns up to limit cards, newest batch first. Cards of one batch share
// created_at and keep their insertion order. A blank userID lists every user.
func (s *FlashcardStore) List(ctx context.Context, userID string, limit int) ([]models.Flashcard, error) {
	query := s.db.WithContext(ctx).Order("created_at desc").Order("id asc").Limit(limit)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	cards := []models.Flashcard{}
	if err := query.Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}
