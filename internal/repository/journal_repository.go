package repository

import (
	"strings"
	"time"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/services"
)

type JournalRepository struct {
	store *db.JournalStore
}

func NewJournalRepository(store *db.JournalStore) *JournalRepository {
	return &JournalRepository{store: store}
}

func (repo *JournalRepository) Add(content string, mood string, category string, tags []string) (models.JournalEntry, error) {
	entry := models.JournalEntry{
		Content:   content,
		Mood:      strings.TrimSpace(mood),
		Category:  strings.TrimSpace(category),
		Tags:      tags,
		CreatedAt: time.Now(),
	}
	if err := repo.store.Upsert(&entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (repo *JournalRepository) Recent() ([]models.JournalEntry, error) {
	return repo.store.ListRecent()
}

func (repo *JournalRepository) Latest() (models.JournalEntry, bool, error) {
	return repo.store.Latest()
}

func (repo *JournalRepository) Delete(entryID uint) error {
	return repo.store.Delete(entryID)
}

// CurrentStreak reports the unbroken run of journaled days ending at now.
func (repo *JournalRepository) CurrentStreak(now time.Time) (int, error) {
	entries, err := repo.store.ListRecent()
	if err != nil {
		return 0, err
	}
	entryTimes := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		entryTimes = append(entryTimes, entry.CreatedAt)
	}
	return services.StreakDays(entryTimes, now), nil
}
