package state

import (
	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

// MoodState feeds the mood screen: a live list of entries, newest first, and
// a record action. The screen learns about its own writes through the live
// query re-emitting.
type MoodState struct {
	repo    *repository.MoodRepository
	Entries *LiveQuery[[]models.MoodEntry]
}

func NewMoodState(bus *db.ChangeBus, repo *repository.MoodRepository) *MoodState {
	return &MoodState{
		repo:    repo,
		Entries: NewLiveQuery(bus, repo.Recent, db.TableMoodEntries),
	}
}

func (s *MoodState) Record(mood string, note string) <-chan error {
	return dispatch(func() error {
		_, err := s.repo.Add(mood, note)
		return err
	})
}

func (s *MoodState) Close() {
	s.Entries.Close()
}
