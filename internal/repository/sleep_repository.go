package repository

import (
	"time"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

const sleepDateLayout = "2006-01-02"

type SleepRepository struct {
	store *db.SleepStore
}

func NewSleepRepository(store *db.SleepStore) *SleepRepository {
	return &SleepRepository{store: store}
}

// Log records a session. Wake before bed is stored as-is; the negative
// duration shows up unchanged in listings.
func (repo *SleepRepository) Log(bedTime time.Time, wakeTime time.Time) (models.SleepSession, error) {
	session := models.SleepSession{
		BedTime:  bedTime,
		WakeTime: wakeTime,
		Date:     wakeTime.Format(sleepDateLayout),
	}
	if err := repo.store.Upsert(&session); err != nil {
		return models.SleepSession{}, err
	}
	return session, nil
}

func (repo *SleepRepository) Recent() ([]models.SleepSession, error) {
	return repo.store.ListRecent()
}

func (repo *SleepRepository) Delete(sessionID uint) error {
	return repo.store.Delete(sessionID)
}
