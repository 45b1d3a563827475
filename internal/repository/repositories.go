package repository

import (
	"context"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

// ChatCompleter is the outbound AI dependency of ChatRepository. Implemented
// by llm.ChatClient; tests substitute stubs.
type ChatCompleter interface {
	Complete(ctx context.Context, history []models.ChatMessage) string
}

// Repositories bundles the stateless façades over the store layer. Built once
// at startup and handed to the state containers.
type Repositories struct {
	Quotes   *QuoteRepository
	Moods    *MoodRepository
	Journals *JournalRepository
	Todos    *TodoRepository
	Sleep    *SleepRepository
	Facts    *FunFactRepository
	Tips     *TipRepository
	Chat     *ChatRepository
	Profile  *ProfileRepository
}

func NewRepositories(stores *db.Stores, completer ChatCompleter) *Repositories {
	return &Repositories{
		Quotes:   NewQuoteRepository(stores.Quotes),
		Moods:    NewMoodRepository(stores.Moods),
		Journals: NewJournalRepository(stores.Journals),
		Todos:    NewTodoRepository(stores.Todos),
		Sleep:    NewSleepRepository(stores.Sleep),
		Facts:    NewFunFactRepository(stores.Facts),
		Tips:     NewTipRepository(stores.Tips),
		Chat:     NewChatRepository(stores.Chat, completer),
		Profile:  NewProfileRepository(stores.Profile),
	}
}
