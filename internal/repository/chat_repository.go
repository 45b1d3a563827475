package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

var ErrEmptyRoomName = errors.New("room name is empty")

type ChatRepository struct {
	store     *db.ChatStore
	completer ChatCompleter
}

func NewChatRepository(store *db.ChatStore, completer ChatCompleter) *ChatRepository {
	return &ChatRepository{store: store, completer: completer}
}

func (repo *ChatRepository) CreateRoom(name string) (models.ChatRoom, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ChatRoom{}, ErrEmptyRoomName
	}
	room := models.ChatRoom{Name: name, CreatedAt: time.Now()}
	if err := repo.store.CreateRoom(&room); err != nil {
		return models.ChatRoom{}, err
	}
	return room, nil
}

func (repo *ChatRepository) Rooms() ([]models.ChatRoom, error) {
	return repo.store.ListRooms()
}

func (repo *ChatRepository) RenameRoom(roomID uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	return repo.store.RenameRoom(roomID, name)
}

// DeleteRoom removes the room and, through the foreign key cascade, every
// message that referenced it.
func (repo *ChatRepository) DeleteRoom(roomID uint) error {
	return repo.store.DeleteRoom(roomID)
}

func (repo *ChatRepository) Messages(roomID uint) ([]models.ChatMessage, error) {
	return repo.store.ListMessages(roomID)
}

func (repo *ChatRepository) AddMessage(roomID uint, text string, fromUser bool) (models.ChatMessage, error) {
	message := models.ChatMessage{
		RoomID:    roomID,
		Text:      text,
		FromUser:  fromUser,
		CreatedAt: time.Now(),
	}
	if err := repo.store.InsertMessage(&message); err != nil {
		return models.ChatMessage{}, err
	}
	return message, nil
}

// AIResponse runs one blocking completion over the given history and returns
// the assistant text, or a descriptive error string on failure. It persists
// nothing; the caller stores both the outbound message and the returned text.
func (repo *ChatRepository) AIResponse(ctx context.Context, history []models.ChatMessage) string {
	return repo.completer.Complete(ctx, history)
}
