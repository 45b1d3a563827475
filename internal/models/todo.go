package models

type TodoItem struct {
	ID        uint   `gorm:"primaryKey"`
	Task      string `gorm:"not null"`
	Completed bool   `gorm:"not null;default:false"`
}
