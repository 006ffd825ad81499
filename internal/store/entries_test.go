package store

import (
	"errors"
	"testing"
	"time"
)

// setupTestDB creates an in-memory database with the workout-type catalog
// seeded, since journal entries reference it
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenTest()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	types := []WorkoutType{
		{ID: "wt-1", Name: "Batting"},
		{ID: "wt-2", Name: "Pitching"},
	}
	for i := range types {
		if err := db.UpsertWorkoutType(&types[i]); err != nil {
			t.Fatalf("Failed to seed workout type: %v", err)
		}
	}

	return db
}

func testEntry(id, day string) *Entry {
	date, _ := time.Parse(DateFormat, day)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &Entry{
		ID:        id,
		UserID:    "user-1",
		EntryDate: date,
		Title:     "Practice",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUpsertEntry_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)

	typeID := "wt-1"
	entryTime := "07:30:00"
	mood := 8

	e := testEntry("e-1", "2025-06-10")
	e.WorkoutTypeID = &typeID
	e.EntryTime = &entryTime
	e.MoodScore = &mood
	e.Notes = "Felt sharp at the plate"

	if err := db.UpsertEntry(e); err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}

	got, err := db.GetEntry("e-1")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}

	if got.ID != "e-1" || got.UserID != "user-1" {
		t.Errorf("got ID=%q UserID=%q", got.ID, got.UserID)
	}
	if got.EntryDate.Format(DateFormat) != "2025-06-10" {
		t.Errorf("EntryDate = %v, want 2025-06-10", got.EntryDate)
	}
	if got.WorkoutTypeID == nil || *got.WorkoutTypeID != "wt-1" {
		t.Errorf("WorkoutTypeID = %v, want wt-1", got.WorkoutTypeID)
	}
	if got.EntryTime == nil || *got.EntryTime != "07:30:00" {
		t.Errorf("EntryTime = %v, want 07:30:00", got.EntryTime)
	}
	if got.MoodScore == nil || *got.MoodScore != 8 {
		t.Errorf("MoodScore = %v, want 8", got.MoodScore)
	}
	if got.Notes != "Felt sharp at the plate" {
		t.Errorf("Notes = %q", got.Notes)
	}
}

func TestUpsertEntry_Update(t *testing.T) {
	db := setupTestDB(t)

	e := testEntry("e-1", "2025-06-10")
	if err := db.UpsertEntry(e); err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}

	mood := 6
	e.MoodScore = &mood
	e.Title = "Updated title"
	if err := db.UpsertEntry(e); err != nil {
		t.Fatalf("UpsertEntry() update error = %v", err)
	}

	got, err := db.GetEntry("e-1")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got.Title != "Updated title" {
		t.Errorf("Title = %q, want updated", got.Title)
	}
	if got.MoodScore == nil || *got.MoodScore != 6 {
		t.Errorf("MoodScore = %v, want 6", got.MoodScore)
	}

	count, err := db.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 after upsert of same id", count)
	}
}

func TestGetEntry_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetEntry("missing")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntry() error = %v, want ErrEntryNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpsertEntry(testEntry("e-1", "2025-06-10")); err != nil {
		t.Fatalf("UpsertEntry() error = %v", err)
	}

	if err := db.DeleteEntry("e-1"); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}

	if _, err := db.GetEntry("e-1"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("entry still present after delete")
	}

	if err := db.DeleteEntry("e-1"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("DeleteEntry() on missing = %v, want ErrEntryNotFound", err)
	}
}

func TestListEntriesInRange(t *testing.T) {
	db := setupTestDB(t)

	days := []string{"2025-06-08", "2025-06-09", "2025-06-10", "2025-06-11"}
	for i, day := range days {
		if err := db.UpsertEntry(testEntry("e-"+day, day)); err != nil {
			t.Fatalf("UpsertEntry(%d) error = %v", i, err)
		}
	}

	start, _ := time.Parse(DateFormat, "2025-06-09")
	end, _ := time.Parse(DateFormat, "2025-06-10")

	entries, err := db.ListEntriesInRange(start, end)
	if err != nil {
		t.Fatalf("ListEntriesInRange() error = %v", err)
	}

	// Range is inclusive on both ends
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].EntryDate.Format(DateFormat) != "2025-06-09" {
		t.Errorf("first entry date = %v, want 2025-06-09", entries[0].EntryDate)
	}
	if entries[1].EntryDate.Format(DateFormat) != "2025-06-10" {
		t.Errorf("second entry date = %v, want 2025-06-10", entries[1].EntryDate)
	}
}

func TestListEntries_NewestFirst(t *testing.T) {
	db := setupTestDB(t)

	for _, day := range []string{"2025-06-08", "2025-06-10", "2025-06-09"} {
		if err := db.UpsertEntry(testEntry("e-"+day, day)); err != nil {
			t.Fatalf("UpsertEntry() error = %v", err)
		}
	}

	entries, err := db.ListEntries(2, 0)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].EntryDate.Format(DateFormat) != "2025-06-10" {
		t.Errorf("first entry = %v, want newest", entries[0].EntryDate)
	}

	// Offset skips the newest
	page2, err := db.ListEntries(2, 2)
	if err != nil {
		t.Fatalf("ListEntries() offset error = %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("got %d entries on page 2, want 1", len(page2))
	}
	if page2[0].EntryDate.Format(DateFormat) != "2025-06-08" {
		t.Errorf("page 2 entry = %v, want oldest", page2[0].EntryDate)
	}
}

func TestListAllEntries(t *testing.T) {
	db := setupTestDB(t)

	entries, err := db.ListAllEntries()
	if err != nil {
		t.Fatalf("ListAllEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries on fresh db, want 0", len(entries))
	}

	for _, day := range []string{"2025-06-10", "2025-06-08"} {
		if err := db.UpsertEntry(testEntry("e-"+day, day)); err != nil {
			t.Fatalf("UpsertEntry() error = %v", err)
		}
	}

	entries, err = db.ListAllEntries()
	if err != nil {
		t.Fatalf("ListAllEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Ordered oldest first
	if entries[0].EntryDate.Format(DateFormat) != "2025-06-08" {
		t.Errorf("first entry = %v, want 2025-06-08", entries[0].EntryDate)
	}
}
