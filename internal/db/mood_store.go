package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewMoodStore(database *gorm.DB, bus *ChangeBus) *MoodStore {
	return &MoodStore{database: database, bus: bus}
}

func (store *MoodStore) Upsert(entry *models.MoodEntry) error {
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error; err != nil {
		return err
	}
	store.bus.Publish(TableMoodEntries)
	return nil
}

// ListRecent returns every mood entry, newest first.
func (store *MoodStore) ListRecent() ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := store.database.Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (store *MoodStore) Latest() (models.MoodEntry, bool, error) {
	entry := models.MoodEntry{}
	result := store.database.
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}
