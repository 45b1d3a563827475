package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewJournalStore(database *gorm.DB, bus *ChangeBus) *JournalStore {
	return &JournalStore{database: database, bus: bus}
}

func (store *JournalStore) Upsert(entry *models.JournalEntry) error {
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error; err != nil {
		return err
	}
	store.bus.Publish(TableJournalEntries)
	return nil
}

// ListRecent returns every journal entry, newest first.
func (store *JournalStore) ListRecent() ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0)
	if err := store.database.Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (store *JournalStore) Latest() (models.JournalEntry, bool, error) {
	entry := models.JournalEntry{}
	result := store.database.
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.JournalEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.JournalEntry{}, false, nil
	}
	return entry, true, nil
}

func (store *JournalStore) Delete(entryID uint) error {
	if err := store.database.Delete(&models.JournalEntry{}, entryID).Error; err != nil {
		return err
	}
	store.bus.Publish(TableJournalEntries)
	return nil
}
