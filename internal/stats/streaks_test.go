package stats

import (
	"testing"
	"time"

	"mentalpitch/internal/store"
)

func date(s string) time.Time {
	d, err := time.Parse(store.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func entriesOn(dates ...string) []store.Entry {
	entries := make([]store.Entry, len(dates))
	for i, d := range dates {
		entries[i] = store.Entry{ID: d, EntryDate: date(d)}
	}
	return entries
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name    string
		entries []store.Entry
		today   string
		want    StreakData
	}{
		{
			name:    "no entries",
			entries: nil,
			today:   "2025-01-05",
			want:    StreakData{},
		},
		{
			name:    "gap before today breaks current streak",
			entries: entriesOn("2025-01-01", "2025-01-02", "2025-01-03", "2025-01-05"),
			today:   "2025-01-05",
			want:    StreakData{Current: 1, Longest: 3, TotalDays: 4},
		},
		{
			name:    "streak ending today",
			entries: entriesOn("2025-01-03", "2025-01-04", "2025-01-05"),
			today:   "2025-01-05",
			want:    StreakData{Current: 3, Longest: 3, TotalDays: 3},
		},
		{
			name:    "no entry today means zero current streak",
			entries: entriesOn("2025-01-01", "2025-01-02", "2025-01-03"),
			today:   "2025-01-05",
			want:    StreakData{Current: 0, Longest: 3, TotalDays: 3},
		},
		{
			name: "multiple entries per day collapse to one",
			entries: append(
				entriesOn("2025-01-04", "2025-01-05"),
				entriesOn("2025-01-04", "2025-01-05")...,
			),
			today: "2025-01-05",
			want:  StreakData{Current: 2, Longest: 2, TotalDays: 2},
		},
		{
			name:    "longest streak in the past beats current",
			entries: entriesOn("2024-12-01", "2024-12-02", "2024-12-03", "2024-12-04", "2025-01-05"),
			today:   "2025-01-05",
			want:    StreakData{Current: 1, Longest: 4, TotalDays: 5},
		},
		{
			name:    "single day",
			entries: entriesOn("2025-01-05"),
			today:   "2025-01-05",
			want:    StreakData{Current: 1, Longest: 1, TotalDays: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streaks(tt.entries, date(tt.today))
			if got != tt.want {
				t.Errorf("Streaks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStreaksCurrentNeverExceedsLongest(t *testing.T) {
	// Current streak is one of the runs the longest scan sees, so it can
	// never exceed it.
	entries := entriesOn(
		"2025-01-01", "2025-01-02",
		"2025-01-04", "2025-01-05", "2025-01-06", "2025-01-07",
	)
	got := Streaks(entries, date("2025-01-07"))
	if got.Current > got.Longest {
		t.Errorf("Current (%d) > Longest (%d)", got.Current, got.Longest)
	}
	if got.Current != 4 || got.Longest != 4 {
		t.Errorf("Streaks() = %+v, want Current=4 Longest=4", got)
	}
}
