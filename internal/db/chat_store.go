package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewChatStore(database *gorm.DB, bus *ChangeBus) *ChatStore {
	return &ChatStore{database: database, bus: bus}
}

func (store *ChatStore) CreateRoom(room *models.ChatRoom) error {
	if err := store.database.Create(room).Error; err != nil {
		return err
	}
	store.bus.Publish(TableChatRooms)
	return nil
}

func (store *ChatStore) ListRooms() ([]models.ChatRoom, error) {
	rooms := make([]models.ChatRoom, 0)
	if err := store.database.Order("created_at ASC, id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (store *ChatStore) RenameRoom(roomID uint, name string) error {
	if err := store.database.Model(&models.ChatRoom{}).Where("id = ?", roomID).Update("name", name).Error; err != nil {
		return err
	}
	store.bus.Publish(TableChatRooms)
	return nil
}

// DeleteRoom removes the room; the foreign key cascades the delete to every
// message referencing it in the same statement.
func (store *ChatStore) DeleteRoom(roomID uint) error {
	if err := store.database.Delete(&models.ChatRoom{}, roomID).Error; err != nil {
		return err
	}
	store.bus.Publish(TableChatRooms, TableChatMessages)
	return nil
}

func (store *ChatStore) InsertMessage(message *models.ChatMessage) error {
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(message).Error; err != nil {
		return err
	}
	store.bus.Publish(TableChatMessages)
	return nil
}

// ListMessages returns a room's messages ascending by creation time.
func (store *ChatStore) ListMessages(roomID uint) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := store.database.
		Where("room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (store *ChatStore) CountMessages(roomID uint) (int64, error) {
	var count int64
	if err := store.database.Model(&models.ChatMessage{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
