package repository

import (
	"strings"
	"time"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

type MoodRepository struct {
	store *db.MoodStore
}

func NewMoodRepository(store *db.MoodStore) *MoodRepository {
	return &MoodRepository{store: store}
}

func (repo *MoodRepository) Add(mood string, note string) (models.MoodEntry, error) {
	entry := models.MoodEntry{
		Mood:      strings.TrimSpace(mood),
		Note:      note,
		CreatedAt: time.Now(),
	}
	if err := repo.store.Upsert(&entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (repo *MoodRepository) Recent() ([]models.MoodEntry, error) {
	return repo.store.ListRecent()
}

func (repo *MoodRepository) Latest() (models.MoodEntry, bool, error) {
	return repo.store.Latest()
}
