package api

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents a journal entry from the MentalPitch API
type Entry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	WorkoutTypeID *uuid.UUID `json:"workout_type_id"`
	EntryDate     string     `json:"entry_date"` // YYYY-MM-DD
	EntryTime     *string    `json:"entry_time"` // HH:MM:SS
	MoodScore     *int       `json:"mood_score"` // 1-10
	Title         string     `json:"title"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewEntry is the payload for creating a journal entry
type NewEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	WorkoutTypeID *uuid.UUID `json:"workout_type_id,omitempty"`
	EntryDate     string     `json:"entry_date"`
	EntryTime     *string    `json:"entry_time,omitempty"`
	MoodScore     *int       `json:"mood_score,omitempty"`
	Title         string     `json:"title"`
	Notes         string     `json:"notes"`
}

// WorkoutType represents a workout-type catalog row from the API
type WorkoutType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
