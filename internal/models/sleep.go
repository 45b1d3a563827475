package models

import "time"

// SleepSession records one night. Wake time is not validated against bed
// time; a negative duration is reported as-is.
type SleepSession struct {
	ID       uint      `gorm:"primaryKey"`
	BedTime  time.Time `gorm:"not null"`
	WakeTime time.Time `gorm:"not null"`
	Date     string    `gorm:"not null;default:''"`
}

func (session SleepSession) Duration() time.Duration {
	return session.WakeTime.Sub(session.BedTime)
}
