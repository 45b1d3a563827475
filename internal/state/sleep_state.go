package state

import (
	"time"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

type SleepState struct {
	repo     *repository.SleepRepository
	Sessions *LiveQuery[[]models.SleepSession]
}

func NewSleepState(bus *db.ChangeBus, repo *repository.SleepRepository) *SleepState {
	return &SleepState{
		repo:     repo,
		Sessions: NewLiveQuery(bus, repo.Recent, db.TableSleepSessions),
	}
}

func (s *SleepState) Log(bedTime time.Time, wakeTime time.Time) <-chan error {
	return dispatch(func() error {
		_, err := s.repo.Log(bedTime, wakeTime)
		return err
	})
}

func (s *SleepState) Delete(sessionID uint) <-chan error {
	return dispatch(func() error {
		return s.repo.Delete(sessionID)
	})
}

func (s *SleepState) Close() {
	s.Sessions.Close()
}
