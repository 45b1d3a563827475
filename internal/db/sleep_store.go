package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SleepStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewSleepStore(database *gorm.DB, bus *ChangeBus) *SleepStore {
	return &SleepStore{database: database, bus: bus}
}

func (store *SleepStore) Upsert(session *models.SleepSession) error {
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(session).Error; err != nil {
		return err
	}
	store.bus.Publish(TableSleepSessions)
	return nil
}

// ListRecent returns sessions newest first by calendar date.
func (store *SleepStore) ListRecent() ([]models.SleepSession, error) {
	sessions := make([]models.SleepSession, 0)
	if err := store.database.Order("date DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (store *SleepStore) Delete(sessionID uint) error {
	if err := store.database.Delete(&models.SleepSession{}, sessionID).Error; err != nil {
		return err
	}
	store.bus.Publish(TableSleepSessions)
	return nil
}
