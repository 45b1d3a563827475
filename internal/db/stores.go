package db

import "gorm.io/gorm"

// Stores bundles every per-entity accessor together with the change bus they
// publish on. It is constructed once at startup and passed explicitly to
// whoever needs data access; there is no global handle.
type Stores struct {
	Bus      *ChangeBus
	Quotes   *QuoteStore
	Moods    *MoodStore
	Journals *JournalStore
	Todos    *TodoStore
	Sleep    *SleepStore
	Facts    *FunFactStore
	Tips     *TipStore
	Chat     *ChatStore
	Profile  *ProfileStore
}

func NewStores(database *gorm.DB) *Stores {
	bus := NewChangeBus()
	return &Stores{
		Bus:      bus,
		Quotes:   NewQuoteStore(database, bus),
		Moods:    NewMoodStore(database, bus),
		Journals: NewJournalStore(database, bus),
		Todos:    NewTodoStore(database, bus),
		Sleep:    NewSleepStore(database, bus),
		Facts:    NewFunFactStore(database, bus),
		Tips:     NewTipStore(database, bus),
		Chat:     NewChatStore(database, bus),
		Profile:  NewProfileStore(database, bus),
	}
}
