package service

import (
	"testing"
	"time"

	"mentalpitch/internal/stats"
	"mentalpitch/internal/store"
)

func setupQueryService(t *testing.T) (*QueryService, *store.DB) {
	t.Helper()

	db, err := store.OpenTest()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := db.UpsertWorkoutType(&store.WorkoutType{ID: "wt-1", Name: "Batting"}); err != nil {
		t.Fatalf("Failed to seed workout type: %v", err)
	}

	qs := NewQueryService(db)
	qs.now = func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	}
	return qs, db
}

func seedEntry(t *testing.T, db *store.DB, id, day string, mood *int, typeID *string) {
	t.Helper()
	date, err := time.Parse(store.DateFormat, day)
	if err != nil {
		t.Fatalf("bad date %q: %v", day, err)
	}
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	entry := &store.Entry{
		ID:            id,
		UserID:        "user-1",
		WorkoutTypeID: typeID,
		EntryDate:     date,
		MoodScore:     mood,
		Title:         "Session",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.UpsertEntry(entry); err != nil {
		t.Fatalf("Failed to seed entry %s: %v", id, err)
	}
}

func moodPtr(v int) *int     { return &v }
func idPtr(s string) *string { return &s }

func TestGetStatsReport(t *testing.T) {
	qs, db := setupQueryService(t)

	// Two entries inside the week window, one outside it
	seedEntry(t, db, "e-1", "2025-06-14", moodPtr(6), idPtr("wt-1"))
	seedEntry(t, db, "e-2", "2025-06-15", moodPtr(8), nil)
	seedEntry(t, db, "e-3", "2025-05-01", moodPtr(3), idPtr("wt-1"))

	report, err := qs.GetStatsReport(stats.PeriodWeek)
	if err != nil {
		t.Fatalf("GetStatsReport() error = %v", err)
	}

	if report.Summary.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, want 2 (window only)", report.Summary.TotalEntries)
	}
	if report.Summary.AverageMood == nil || *report.Summary.AverageMood != 7.0 {
		t.Errorf("AverageMood = %v, want 7.0", report.Summary.AverageMood)
	}

	// Streaks see the full history: May 1st counts toward total days
	if report.Summary.Streaks.TotalDays != 3 {
		t.Errorf("Streaks.TotalDays = %d, want 3", report.Summary.Streaks.TotalDays)
	}
	if report.Summary.Streaks.Current != 2 {
		t.Errorf("Streaks.Current = %d, want 2", report.Summary.Streaks.Current)
	}

	// The May entry is typed but outside the window, so the distribution
	// only covers the June one
	if len(report.TypeDistribution) != 1 {
		t.Fatalf("TypeDistribution has %d groups, want 1", len(report.TypeDistribution))
	}
	if report.TypeDistribution[0].WorkoutTypeName != "Batting" {
		t.Errorf("type name = %q, want Batting", report.TypeDistribution[0].WorkoutTypeName)
	}
	if report.TypeDistribution[0].EntryCount != 1 {
		t.Errorf("type count = %d, want 1", report.TypeDistribution[0].EntryCount)
	}

	if len(report.Insights) == 0 {
		t.Error("Insights should never be empty")
	}
}

func TestGetProfile(t *testing.T) {
	qs, db := setupQueryService(t)

	seedEntry(t, db, "e-1", "2025-06-14", moodPtr(4), idPtr("wt-1"))
	seedEntry(t, db, "e-2", "2025-06-15", moodPtr(8), idPtr("wt-1"))

	profile, err := qs.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}

	if profile.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, want 2", profile.TotalEntries)
	}
	if profile.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", profile.CurrentStreak)
	}
	if profile.AverageMood == nil || *profile.AverageMood != 6.0 {
		t.Errorf("AverageMood = %v, want 6.0", profile.AverageMood)
	}
	if profile.MostActiveWorkoutType == nil || *profile.MostActiveWorkoutType != "Batting" {
		t.Errorf("MostActiveWorkoutType = %v, want Batting", profile.MostActiveWorkoutType)
	}
}

func TestGetRecentEntries(t *testing.T) {
	qs, db := setupQueryService(t)

	seedEntry(t, db, "e-1", "2025-06-13", nil, idPtr("wt-1"))
	seedEntry(t, db, "e-2", "2025-06-14", nil, nil)
	seedEntry(t, db, "e-3", "2025-06-15", nil, nil)

	entries, err := qs.GetRecentEntries(2, 0)
	if err != nil {
		t.Fatalf("GetRecentEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first
	if entries[0].Entry.ID != "e-3" {
		t.Errorf("first entry = %s, want e-3", entries[0].Entry.ID)
	}
	if entries[0].WorkoutTypeName != "" {
		t.Errorf("typeless entry has name %q", entries[0].WorkoutTypeName)
	}

	page2, err := qs.GetRecentEntries(2, 2)
	if err != nil {
		t.Fatalf("GetRecentEntries() offset error = %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("got %d entries on page 2, want 1", len(page2))
	}
	if page2[0].Entry.ID != "e-1" {
		t.Errorf("page 2 entry = %s, want e-1", page2[0].Entry.ID)
	}
	if page2[0].WorkoutTypeName != "Batting" {
		t.Errorf("WorkoutTypeName = %q, want Batting", page2[0].WorkoutTypeName)
	}

	count, err := qs.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
