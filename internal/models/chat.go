package models

import "time"

type ChatRoom struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}

// ChatMessage rows belong to exactly one room; deleting the room cascades to
// its messages. Messages are listed ascending by creation time.
type ChatMessage struct {
	ID        uint   `gorm:"primaryKey"`
	RoomID    uint   `gorm:"not null;index"`
	Text      string `gorm:"not null"`
	FromUser  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}
