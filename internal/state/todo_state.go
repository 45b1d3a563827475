package state

import (
	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

type TodoState struct {
	repo  *repository.TodoRepository
	Items *LiveQuery[[]models.TodoItem]
}

func NewTodoState(bus *db.ChangeBus, repo *repository.TodoRepository) *TodoState {
	return &TodoState{
		repo:  repo,
		Items: NewLiveQuery(bus, repo.List, db.TableTodoItems),
	}
}

func (s *TodoState) Add(task string) <-chan error {
	return dispatch(func() error {
		_, err := s.repo.Add(task)
		return err
	})
}

func (s *TodoState) Toggle(itemID uint) <-chan error {
	return dispatch(func() error {
		return s.repo.Toggle(itemID)
	})
}

func (s *TodoState) Rename(itemID uint, task string) <-chan error {
	return dispatch(func() error {
		return s.repo.Rename(itemID, task)
	})
}

func (s *TodoState) Delete(itemID uint) <-chan error {
	return dispatch(func() error {
		return s.repo.Delete(itemID)
	})
}

func (s *TodoState) Close() {
	s.Items.Close()
}
