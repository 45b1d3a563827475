package models

import "time"

// JournalEntry is append-only apart from owner-initiated deletion.
type JournalEntry struct {
	ID        uint     `gorm:"primaryKey"`
	Content   string   `gorm:"not null"`
	Mood      string   `gorm:"not null;default:''"`
	Category  string   `gorm:"not null;default:''"`
	Tags      []string `gorm:"serializer:json"`
	CreatedAt time.Time
}
