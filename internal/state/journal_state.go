package state

import (
	"time"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

type JournalState struct {
	repo    *repository.JournalRepository
	Entries *LiveQuery[[]models.JournalEntry]
}

func NewJournalState(bus *db.ChangeBus, repo *repository.JournalRepository) *JournalState {
	return &JournalState{
		repo:    repo,
		Entries: NewLiveQuery(bus, repo.Recent, db.TableJournalEntries),
	}
}

func (s *JournalState) Add(content string, mood string, category string, tags []string) <-chan error {
	return dispatch(func() error {
		_, err := s.repo.Add(content, mood, category, tags)
		return err
	})
}

func (s *JournalState) Delete(entryID uint) <-chan error {
	return dispatch(func() error {
		return s.repo.Delete(entryID)
	})
}

// Streak reports the unbroken run of journaled days ending now.
func (s *JournalState) Streak() (int, error) {
	return s.repo.CurrentStreak(time.Now())
}

func (s *JournalState) Close() {
	s.Entries.Close()
}
