package state

import (
	"context"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

// ChatRoomsState backs the room list screen.
type ChatRoomsState struct {
	repo  *repository.ChatRepository
	Rooms *LiveQuery[[]models.ChatRoom]
}

func NewChatRoomsState(bus *db.ChangeBus, repo *repository.ChatRepository) *ChatRoomsState {
	return &ChatRoomsState{
		repo:  repo,
		Rooms: NewLiveQuery(bus, repo.Rooms, db.TableChatRooms),
	}
}

func (s *ChatRoomsState) Create(name string) <-chan error {
	return dispatch(func() error {
		_, err := s.repo.CreateRoom(name)
		return err
	})
}

func (s *ChatRoomsState) Rename(roomID uint, name string) <-chan error {
	return dispatch(func() error {
		return s.repo.RenameRoom(roomID, name)
	})
}

func (s *ChatRoomsState) Delete(roomID uint) <-chan error {
	return dispatch(func() error {
		return s.repo.DeleteRoom(roomID)
	})
}

func (s *ChatRoomsState) Close() {
	s.Rooms.Close()
}

// ChatState backs one open room: a live ascending message feed plus Send.
type ChatState struct {
	repo     *repository.ChatRepository
	roomID   uint
	Messages *LiveQuery[[]models.ChatMessage]
}

func NewChatState(bus *db.ChangeBus, repo *repository.ChatRepository, roomID uint) *ChatState {
	return &ChatState{
		repo:   repo,
		roomID: roomID,
		Messages: NewLiveQuery(bus, func() ([]models.ChatMessage, error) {
			return repo.Messages(roomID)
		}, db.TableChatMessages),
	}
}

// Send persists the user's message, runs the completion over the room's full
// history, and persists the returned text as the assistant message. Error
// strings from the AI call are stored exactly like real replies. When ctx is
// cancelled mid-flight no assistant message is persisted.
func (s *ChatState) Send(ctx context.Context, text string) <-chan error {
	return dispatch(func() error {
		if _, err := s.repo.AddMessage(s.roomID, text, true); err != nil {
			return err
		}
		history, err := s.repo.Messages(s.roomID)
		if err != nil {
			return err
		}
		reply := s.repo.AIResponse(ctx, history)
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err = s.repo.AddMessage(s.roomID, reply, false)
		return err
	})
}

func (s *ChatState) Close() {
	s.Messages.Close()
}
