package db

import "sync"

// Table identifies one of the local tables for change notification.
type Table string

const (
	TableQuotes         Table = "quotes"
	TableMoodEntries    Table = "mood_entries"
	TableJournalEntries Table = "journal_entries"
	TableTodoItems      Table = "todo_items"
	TableSleepSessions  Table = "sleep_sessions"
	TableFunFacts       Table = "fun_facts"
	TableTips           Table = "mental_health_tips"
	TableChatRooms      Table = "chat_rooms"
	TableChatMessages   Table = "chat_messages"
	TableUserProfiles   Table = "user_profiles"
)

// ChangeBus is the explicit publish-subscribe mechanism behind live queries.
// Every store publishes the tables it touched after a write commits, and
// listeners re-run their query against the now-current state. Listeners run
// synchronously on the committing goroutine.
type ChangeBus struct {
	mu        sync.RWMutex
	listeners map[Table]map[int]func()
	nextID    int
}

func NewChangeBus() *ChangeBus {
	return &ChangeBus{listeners: make(map[Table]map[int]func())}
}

// Subscribe registers fn for every listed table and returns a cancel func
// that removes the registration. A listener registered for several tables is
// invoked once per Publish even when the publish names more than one of them.
func (bus *ChangeBus) Subscribe(fn func(), tables ...Table) (cancel func()) {
	bus.mu.Lock()
	id := bus.nextID
	bus.nextID++
	for _, table := range tables {
		if bus.listeners[table] == nil {
			bus.listeners[table] = make(map[int]func())
		}
		bus.listeners[table][id] = fn
	}
	bus.mu.Unlock()

	registered := append([]Table(nil), tables...)
	return func() {
		bus.mu.Lock()
		for _, table := range registered {
			delete(bus.listeners[table], id)
		}
		bus.mu.Unlock()
	}
}

// Publish notifies every listener registered for any of the given tables.
func (bus *ChangeBus) Publish(tables ...Table) {
	bus.mu.RLock()
	notify := make(map[int]func())
	for _, table := range tables {
		for id, fn := range bus.listeners[table] {
			notify[id] = fn
		}
	}
	bus.mu.RUnlock()

	for _, fn := range notify {
		fn()
	}
}
