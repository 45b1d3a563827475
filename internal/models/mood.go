package models

import "time"

const (
	MoodGreat   = "great"
	MoodGood    = "good"
	MoodNeutral = "neutral"
	MoodLow     = "low"
	MoodAwful   = "awful"
)

// MoodEntry is append-only; listing shows the newest entry first.
type MoodEntry struct {
	ID        uint   `gorm:"primaryKey"`
	Mood      string `gorm:"not null"`
	Note      string `gorm:"not null;default:''"`
	CreatedAt time.Time
}
