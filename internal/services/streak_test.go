package services

import (
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestStreakDaysCountsUnbrokenRunEndingToday(t *testing.T) {
	now := day(t, "2026-08-30 18:00")
	entries := []time.Time{
		day(t, "2026-08-30 08:00"),
		day(t, "2026-08-29 21:30"),
		day(t, "2026-08-28 07:15"),
	}

	if got := StreakDays(entries, now); got != 3 {
		t.Fatalf("StreakDays() = %d, want 3", got)
	}
}

func TestStreakDaysGapCountsOnlyUnbrokenTail(t *testing.T) {
	now := day(t, "2026-08-30 18:00")
	entries := []time.Time{
		day(t, "2026-08-30 08:00"),
		day(t, "2026-08-29 21:30"),
		// no entry on the 28th
		day(t, "2026-08-27 07:15"),
		day(t, "2026-08-26 07:15"),
	}

	if got := StreakDays(entries, now); got != 2 {
		t.Fatalf("StreakDays() = %d, want 2", got)
	}
}

func TestStreakDaysSurvivesMissingEntryToday(t *testing.T) {
	now := day(t, "2026-08-30 09:00")
	entries := []time.Time{
		day(t, "2026-08-29 22:00"),
		day(t, "2026-08-28 22:00"),
	}

	if got := StreakDays(entries, now); got != 2 {
		t.Fatalf("StreakDays() = %d, want 2", got)
	}
}

func TestStreakDaysZeroCases(t *testing.T) {
	now := day(t, "2026-08-30 09:00")

	if got := StreakDays(nil, now); got != 0 {
		t.Fatalf("StreakDays(nil) = %d, want 0", got)
	}

	stale := []time.Time{day(t, "2026-08-27 10:00")}
	if got := StreakDays(stale, now); got != 0 {
		t.Fatalf("StreakDays(stale) = %d, want 0", got)
	}
}

func TestStreakDaysMultipleEntriesSameDayCountOnce(t *testing.T) {
	now := day(t, "2026-08-30 20:00")
	entries := []time.Time{
		day(t, "2026-08-30 08:00"),
		day(t, "2026-08-30 12:00"),
		day(t, "2026-08-30 19:00"),
	}

	if got := StreakDays(entries, now); got != 1 {
		t.Fatalf("StreakDays() = %d, want 1", got)
	}
}
