package stats

import (
	"sort"
	"time"

	"mentalpitch/internal/store"
)

// StreakData summarizes consecutive-day journaling streaks.
// It is always computed over the complete entry history, independent
// of the requested reporting period.
type StreakData struct {
	Current   int
	Longest   int
	TotalDays int
}

// Streaks computes current and longest streaks from the full entry history.
// Multiple entries on the same date collapse to a single active day.
func Streaks(entries []store.Entry, today time.Time) StreakData {
	days := make(map[string]bool)
	for _, e := range entries {
		days[e.EntryDate.Format(store.DateFormat)] = true
	}
	if len(days) == 0 {
		return StreakData{}
	}

	// Current streak: walk backward from today until the first missing day.
	current := 0
	for d := DateOnly(today); days[d.Format(store.DateFormat)]; d = d.AddDate(0, 0, -1) {
		current++
	}

	// Longest streak: walk distinct dates newest-first, counting runs of
	// exactly-consecutive days.
	dates := make([]time.Time, 0, len(days))
	for s := range days {
		d, err := time.Parse(store.DateFormat, s)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].AddDate(0, 0, -1).Equal(dates[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return StreakData{
		Current:   current,
		Longest:   longest,
		TotalDays: len(days),
	}
}
