package models

import "time"

// LocalEntry is one namespaced value of the local key/value store.
type LocalEntry struct {
	Namespace string `gorm:"primaryKey;size:100"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
