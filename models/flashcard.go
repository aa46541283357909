package models

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// DefaultUserID owns cards generated without a user identifier.
const DefaultUserID = "demo"

// Flashcard is a generated question/answer pair. Cards are never updated once created.
type Flashcard struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	PublicID    string    `gorm:"size:21;uniqueIndex" json:"id,omitempty"`
	Question    string    `gorm:"not null;size:300" json:"question"`
	Answer      string    `gorm:"not null;type:text" json:"answer"`
	SourceNotes string    `gorm:"type:text" json:"source_notes,omitempty"`
	UserID      string    `gorm:"not null;size:100;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns the public ID the API exposes.
func (f *Flashcard) BeforeCreate(tx *gorm.DB) error {
	if f.PublicID != "" {
		return nil
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return err
	}
	f.PublicID = publicID
	return nil
}

// ResolveUserID falls back to DefaultUserID for a blank identifier.
func ResolveUserID(userID string) string {
	if userID == "" {
		return DefaultUserID
	}
	return userID
}
