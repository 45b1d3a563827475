package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/willowmind/willow/internal/models"
)

type stubFactSource struct {
	fact models.FunFact
	err  error
}

func (s *stubFactSource) RandomFact() (models.FunFact, error) {
	return s.fact, s.err
}

type stubMoodReader struct {
	latest models.MoodEntry
	found  bool
	err    error
}

func (s *stubMoodReader) Latest() (models.MoodEntry, bool, error) {
	return s.latest, s.found, s.err
}

type stubJournalReader struct {
	latest models.JournalEntry
	found  bool
	err    error
}

func (s *stubJournalReader) Latest() (models.JournalEntry, bool, error) {
	return s.latest, s.found, s.err
}

type recordingNotifier struct {
	titles []string
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, title string, _ string) error {
	n.titles = append(n.titles, title)
	return n.err
}

func (n *recordingNotifier) sent(title string) bool {
	for _, sent := range n.titles {
		if sent == title {
			return true
		}
	}
	return false
}

func pinnedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestRunOnceNotifiesWhenEverythingIsStale(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notify := &recordingNotifier{}
	reminder := NewReminder(
		&stubFactSource{fact: models.FunFact{Text: "octopuses have three hearts"}},
		&stubMoodReader{},
		&stubJournalReader{},
		notify,
	)
	reminder.SetClock(pinnedClock(now))

	reminder.RunOnce(context.Background())

	if len(notify.titles) != 3 {
		t.Fatalf("got %d notifications, want 3: %v", len(notify.titles), notify.titles)
	}
	for _, title := range []string{"Did you know?", "Mood check-in", "Journal check-in"} {
		if !notify.sent(title) {
			t.Fatalf("missing %q notification; sent %v", title, notify.titles)
		}
	}
}

func TestRunOnceSkipsFreshEntries(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notify := &recordingNotifier{}
	reminder := NewReminder(
		&stubFactSource{fact: models.FunFact{Text: "honey never spoils"}},
		&stubMoodReader{latest: models.MoodEntry{CreatedAt: now.Add(-2 * time.Hour)}, found: true},
		&stubJournalReader{latest: models.JournalEntry{CreatedAt: now.Add(-23 * time.Hour)}, found: true},
		notify,
	)
	reminder.SetClock(pinnedClock(now))

	reminder.RunOnce(context.Background())

	if notify.sent("Mood check-in") || notify.sent("Journal check-in") {
		t.Fatalf("check-in fired for fresh entries: %v", notify.titles)
	}
	if !notify.sent("Did you know?") {
		t.Fatalf("fun fact should fire every run: %v", notify.titles)
	}
}

func TestRunOnceSkipsEntriesExactlyAtStalenessWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notify := &recordingNotifier{}
	reminder := NewReminder(
		&stubFactSource{fact: models.FunFact{Text: "wombats have cubic droppings"}},
		&stubMoodReader{latest: models.MoodEntry{CreatedAt: now.Add(-CheckInAfter)}, found: true},
		&stubJournalReader{latest: models.JournalEntry{CreatedAt: now.Add(-CheckInAfter)}, found: true},
		notify,
	)
	reminder.SetClock(pinnedClock(now))

	reminder.RunOnce(context.Background())

	// An entry aged exactly CheckInAfter is still fresh; only strictly older
	// entries trigger a check-in.
	if notify.sent("Mood check-in") || notify.sent("Journal check-in") {
		t.Fatalf("check-in fired for entries exactly at the window: %v", notify.titles)
	}
}

func TestRunOnceNotifiesPastStalenessWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notify := &recordingNotifier{}
	reminder := NewReminder(
		&stubFactSource{fact: models.FunFact{Text: "bananas are berries"}},
		&stubMoodReader{latest: models.MoodEntry{CreatedAt: now.Add(-CheckInAfter - time.Minute)}, found: true},
		&stubJournalReader{latest: models.JournalEntry{CreatedAt: now.Add(-CheckInAfter - time.Minute)}, found: true},
		notify,
	)
	reminder.SetClock(pinnedClock(now))

	reminder.RunOnce(context.Background())

	if !notify.sent("Mood check-in") || !notify.sent("Journal check-in") {
		t.Fatalf("check-ins should fire for entries older than %v: %v", CheckInAfter, notify.titles)
	}
}

func TestRunOnceChecksAreIndependent(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notify := &recordingNotifier{}
	reminder := NewReminder(
		&stubFactSource{err: errors.New("no facts seeded")},
		&stubMoodReader{err: errors.New("database locked")},
		&stubJournalReader{},
		notify,
	)
	reminder.SetClock(pinnedClock(now))

	reminder.RunOnce(context.Background())

	if !notify.sent("Journal check-in") {
		t.Fatalf("journal check failed to run after earlier check errors: %v", notify.titles)
	}
	if notify.sent("Did you know?") || notify.sent("Mood check-in") {
		t.Fatalf("failed checks still notified: %v", notify.titles)
	}
}
