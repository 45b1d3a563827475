package state

import (
	"log"
	"sync"
	"time"

	"github.com/willowmind/willow/internal/db"
)

// DefaultGraceWindow is how long a live query keeps observing its tables
// after the last subscriber detaches. A subscriber attaching within the
// window gets the retained snapshot without a re-query, which covers
// transient detach/reattach cycles.
const DefaultGraceWindow = 5 * time.Second

// LiveQuery re-runs fetch whenever any of its tables changes and fans the new
// snapshot out to subscribers. Late subscribers immediately receive the
// latest known value. Rapid successive changes coalesce: a slow subscriber
// only ever sees the newest snapshot.
//
// Lifecycle: Unobserved -> Observing (first subscriber) -> Unobserved (grace
// window elapses after the last detach) or Closed.
type LiveQuery[T any] struct {
	bus    *db.ChangeBus
	fetch  func() (T, error)
	tables []db.Table

	mu          sync.Mutex
	subscribers map[int]chan T
	nextID      int
	latest      T
	hasLatest   bool
	unsubscribe func()
	graceTimer  *time.Timer
	grace       time.Duration
	closed      bool
}

func NewLiveQuery[T any](bus *db.ChangeBus, fetch func() (T, error), tables ...db.Table) *LiveQuery[T] {
	return &LiveQuery[T]{
		bus:         bus,
		fetch:       fetch,
		tables:      tables,
		subscribers: make(map[int]chan T),
		grace:       DefaultGraceWindow,
	}
}

// SetGrace overrides the grace window. Call before the first Subscribe.
func (query *LiveQuery[T]) SetGrace(grace time.Duration) {
	query.mu.Lock()
	query.grace = grace
	query.mu.Unlock()
}

// Latest returns the most recent snapshot, if one has been fetched.
func (query *LiveQuery[T]) Latest() (T, bool) {
	query.mu.Lock()
	defer query.mu.Unlock()
	return query.latest, query.hasLatest
}

// Subscribe attaches an observer. The channel carries the latest known
// snapshot right away (when one exists) and then one value per upstream
// change. cancel detaches the observer; after the last detach the query keeps
// observing for the grace window before letting go of its upstream
// registration.
func (query *LiveQuery[T]) Subscribe() (<-chan T, func()) {
	query.mu.Lock()
	if query.closed {
		query.mu.Unlock()
		ch := make(chan T)
		close(ch)
		return ch, func() {}
	}

	if query.graceTimer != nil {
		query.graceTimer.Stop()
		query.graceTimer = nil
	}

	id := query.nextID
	query.nextID++
	ch := make(chan T, 1)
	query.subscribers[id] = ch
	if query.hasLatest {
		ch <- query.latest
	}
	observing := query.unsubscribe != nil
	query.mu.Unlock()

	if !observing {
		query.startObserving()
	}

	return ch, func() { query.detach(id) }
}

func (query *LiveQuery[T]) startObserving() {
	cancel := query.bus.Subscribe(query.refresh, query.tables...)

	// A concurrent Subscribe may have registered first; only one upstream
	// registration may survive, so the loser releases its own.
	query.mu.Lock()
	if query.closed || len(query.subscribers) == 0 || query.unsubscribe != nil {
		query.mu.Unlock()
		cancel()
		return
	}
	query.unsubscribe = cancel
	query.mu.Unlock()

	query.refresh()
}

// refresh re-runs the query and pushes the snapshot to every subscriber. It
// runs synchronously on whichever goroutine committed the triggering write.
func (query *LiveQuery[T]) refresh() {
	value, err := query.fetch()
	if err != nil {
		log.Printf("live query refresh failed: %v", err)
		return
	}

	query.mu.Lock()
	query.latest = value
	query.hasLatest = true
	for _, ch := range query.subscribers {
		offerLatest(ch, value)
	}
	query.mu.Unlock()
}

// offerLatest delivers value without blocking: a full buffer is drained first
// so the subscriber always finds the newest snapshot.
func offerLatest[T any](ch chan T, value T) {
	select {
	case ch <- value:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- value:
	default:
	}
}

func (query *LiveQuery[T]) detach(id int) {
	query.mu.Lock()
	defer query.mu.Unlock()

	if _, ok := query.subscribers[id]; !ok {
		return
	}
	delete(query.subscribers, id)

	if len(query.subscribers) > 0 || query.unsubscribe == nil || query.closed {
		return
	}
	if query.graceTimer != nil {
		query.graceTimer.Stop()
	}
	query.graceTimer = time.AfterFunc(query.grace, query.stopObserving)
}

func (query *LiveQuery[T]) stopObserving() {
	query.mu.Lock()
	if query.closed || len(query.subscribers) > 0 {
		query.mu.Unlock()
		return
	}
	cancel := query.unsubscribe
	query.unsubscribe = nil
	query.graceTimer = nil
	query.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Close ends the lifecycle: subscribers' channels are closed and the upstream
// registration is released. Further Subscribe calls get a closed channel.
func (query *LiveQuery[T]) Close() {
	query.mu.Lock()
	if query.closed {
		query.mu.Unlock()
		return
	}
	query.closed = true
	cancel := query.unsubscribe
	query.unsubscribe = nil
	if query.graceTimer != nil {
		query.graceTimer.Stop()
		query.graceTimer = nil
	}
	for _, ch := range query.subscribers {
		close(ch)
	}
	query.subscribers = make(map[int]chan T)
	query.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
