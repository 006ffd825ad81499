package store

import "time"

// Auth represents OAuth tokens for the MentalPitch backend
type Auth struct {
	UserID       string    `db:"user_id"`
	Email        string    `db:"email"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// WorkoutType represents an entry in the workout-type catalog
type WorkoutType struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// Entry represents a single journal entry
type Entry struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	WorkoutTypeID *string   `db:"workout_type_id"` // nullable
	EntryDate     time.Time `db:"entry_date"`      // calendar date, time component zeroed
	EntryTime     *string   `db:"entry_time"`      // nullable, "HH:MM:SS"
	MoodScore     *int      `db:"mood_score"`      // nullable, 1-10
	Title         string    `db:"title"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// DateFormat is the storage format for entry dates
const DateFormat = "2006-01-02"

// TimeFormat is the storage format for entry times
const TimeFormat = "15:04:05"
