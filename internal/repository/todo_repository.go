package repository

import (
	"errors"
	"strings"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

var ErrEmptyTask = errors.New("task text is empty")

type TodoRepository struct {
	store *db.TodoStore
}

func NewTodoRepository(store *db.TodoStore) *TodoRepository {
	return &TodoRepository{store: store}
}

func (repo *TodoRepository) Add(task string) (models.TodoItem, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return models.TodoItem{}, ErrEmptyTask
	}
	item := models.TodoItem{Task: task}
	if err := repo.store.Upsert(&item); err != nil {
		return models.TodoItem{}, err
	}
	return item, nil
}

func (repo *TodoRepository) List() ([]models.TodoItem, error) {
	return repo.store.List()
}

func (repo *TodoRepository) SetCompleted(itemID uint, completed bool) error {
	return repo.store.SetCompleted(itemID, completed)
}

func (repo *TodoRepository) Toggle(itemID uint) error {
	item, err := repo.store.FindByID(itemID)
	if err != nil {
		return err
	}
	return repo.store.SetCompleted(itemID, !item.Completed)
}

func (repo *TodoRepository) Rename(itemID uint, task string) error {
	task = strings.TrimSpace(task)
	if task == "" {
		return ErrEmptyTask
	}
	return repo.store.UpdateTask(itemID, task)
}

func (repo *TodoRepository) Delete(itemID uint) error {
	return repo.store.Delete(itemID)
}
