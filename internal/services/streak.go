package services

import "time"

// StreakDays counts the unbroken run of consecutive calendar days with at
// least one entry, anchored at today. A day without entries breaks the run;
// entries older than the break do not count. If today has no entry yet, a run
// ending yesterday still counts, so the streak is not lost before the day's
// first entry.
func StreakDays(entryTimes []time.Time, now time.Time) int {
	if len(entryTimes) == 0 {
		return 0
	}

	days := make(map[time.Time]struct{}, len(entryTimes))
	for _, entryTime := range entryTimes {
		days[dateOnly(entryTime.In(now.Location()))] = struct{}{}
	}

	anchor := dateOnly(now)
	if _, ok := days[anchor]; !ok {
		anchor = anchor.AddDate(0, 0, -1)
		if _, ok := days[anchor]; !ok {
			return 0
		}
	}

	streak := 0
	for cursor := anchor; ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := days[cursor]; !ok {
			break
		}
		streak++
	}
	return streak
}

func dateOnly(moment time.Time) time.Time {
	return time.Date(moment.Year(), moment.Month(), moment.Day(), 0, 0, 0, 0, moment.Location())
}
