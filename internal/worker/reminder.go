package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/notifier"
)

// CheckInAfter is how stale the latest mood or journal entry may be before a
// check-in reminder fires.
const CheckInAfter = 24 * time.Hour

type FactSource interface {
	RandomFact() (models.FunFact, error)
}

type MoodReader interface {
	Latest() (models.MoodEntry, bool, error)
}

type JournalReader interface {
	Latest() (models.JournalEntry, bool, error)
}

// Reminder is the periodic wellness job. It never schedules itself: the
// caller invokes RunOnce on whatever cadence it owns, and there is no retry
// logic here.
type Reminder struct {
	facts    FactSource
	moods    MoodReader
	journals JournalReader
	notify   notifier.Notifier
	now      func() time.Time
}

func NewReminder(facts FactSource, moods MoodReader, journals JournalReader, notify notifier.Notifier) *Reminder {
	return &Reminder{
		facts:    facts,
		moods:    moods,
		journals: journals,
		notify:   notify,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Tests pin it.
func (w *Reminder) SetClock(now func() time.Time) {
	w.now = now
}

// RunOnce performs the three independent reminder checks. Each is
// best-effort: a failure is logged and the remaining checks still run.
func (w *Reminder) RunOnce(ctx context.Context) {
	if err := w.sendFunFact(ctx); err != nil {
		log.Printf("reminder: fun fact failed: %v", err)
	}
	if err := w.sendMoodCheckIn(ctx); err != nil {
		log.Printf("reminder: mood check-in failed: %v", err)
	}
	if err := w.sendJournalCheckIn(ctx); err != nil {
		log.Printf("reminder: journal check-in failed: %v", err)
	}
}

func (w *Reminder) sendFunFact(ctx context.Context) error {
	fact, err := w.facts.RandomFact()
	if err != nil {
		return fmt.Errorf("fetch fun fact: %w", err)
	}
	return w.notify.Notify(ctx, "Did you know?", fact.Text)
}

func (w *Reminder) sendMoodCheckIn(ctx context.Context) error {
	latest, found, err := w.moods.Latest()
	if err != nil {
		return fmt.Errorf("fetch latest mood: %w", err)
	}
	if found && w.now().Sub(latest.CreatedAt) <= CheckInAfter {
		return nil
	}
	return w.notify.Notify(ctx, "Mood check-in", "How are you feeling today?")
}

func (w *Reminder) sendJournalCheckIn(ctx context.Context) error {
	latest, found, err := w.journals.Latest()
	if err != nil {
		return fmt.Errorf("fetch latest journal entry: %w", err)
	}
	if found && w.now().Sub(latest.CreatedAt) <= CheckInAfter {
		return nil
	}
	return w.notify.Notify(ctx, "Journal check-in", "Take a minute to write down your day.")
}
