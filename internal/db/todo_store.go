package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TodoStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewTodoStore(database *gorm.DB, bus *ChangeBus) *TodoStore {
	return &TodoStore{database: database, bus: bus}
}

func (store *TodoStore) Upsert(item *models.TodoItem) error {
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error; err != nil {
		return err
	}
	store.bus.Publish(TableTodoItems)
	return nil
}

// List returns items in insertion order; there is no further ordering rule.
func (store *TodoStore) List() ([]models.TodoItem, error) {
	items := make([]models.TodoItem, 0)
	if err := store.database.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (store *TodoStore) FindByID(itemID uint) (models.TodoItem, error) {
	var item models.TodoItem
	if err := store.database.First(&item, itemID).Error; err != nil {
		return models.TodoItem{}, err
	}
	return item, nil
}

func (store *TodoStore) SetCompleted(itemID uint, completed bool) error {
	if err := store.database.Model(&models.TodoItem{}).Where("id = ?", itemID).Update("completed", completed).Error; err != nil {
		return err
	}
	store.bus.Publish(TableTodoItems)
	return nil
}

func (store *TodoStore) UpdateTask(itemID uint, task string) error {
	if err := store.database.Model(&models.TodoItem{}).Where("id = ?", itemID).Update("task", task).Error; err != nil {
		return err
	}
	store.bus.Publish(TableTodoItems)
	return nil
}

func (store *TodoStore) Delete(itemID uint) error {
	if err := store.database.Delete(&models.TodoItem{}, itemID).Error; err != nil {
		return err
	}
	store.bus.Publish(TableTodoItems)
	return nil
}
