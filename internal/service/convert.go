package service

import (
	"fmt"
	"time"

	"mentalpitch/internal/api"
	"mentalpitch/internal/store"
)

// convertEntry maps an API entry to its store representation
func convertEntry(e api.Entry) (*store.Entry, error) {
	entryDate, err := time.Parse(store.DateFormat, e.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("parsing entry_date %q: %w", e.EntryDate, err)
	}

	var workoutTypeID *string
	if e.WorkoutTypeID != nil {
		id := e.WorkoutTypeID.String()
		workoutTypeID = &id
	}

	return &store.Entry{
		ID:            e.ID.String(),
		UserID:        e.UserID.String(),
		WorkoutTypeID: workoutTypeID,
		EntryDate:     entryDate,
		EntryTime:     e.EntryTime,
		MoodScore:     e.MoodScore,
		Title:         e.Title,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}

// convertWorkoutType maps an API workout type to its store representation
func convertWorkoutType(wt api.WorkoutType) *store.WorkoutType {
	return &store.WorkoutType{
		ID:   wt.ID.String(),
		Name: wt.Name,
	}
}
