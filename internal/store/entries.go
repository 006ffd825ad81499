package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const entryColumns = `id, user_id, workout_type_id, entry_date, entry_time,
	mood_score, title, notes, created_at, updated_at`

// UpsertEntry inserts or updates a journal entry
func (db *DB) UpsertEntry(e *Entry) error {
	_, err := db.Exec(`
		INSERT INTO journal_entries (
			id, user_id, workout_type_id, entry_date, entry_time,
			mood_score, title, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			workout_type_id = excluded.workout_type_id,
			entry_date = excluded.entry_date,
			entry_time = excluded.entry_time,
			mood_score = excluded.mood_score,
			title = excluded.title,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`,
		e.ID, e.UserID, e.WorkoutTypeID, e.EntryDate.Format(DateFormat), e.EntryTime,
		e.MoodScore, e.Title, e.Notes,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

// GetEntry retrieves a journal entry by ID
func (db *DB) GetEntry(id string) (*Entry, error) {
	row := db.QueryRow(`
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE id = ?
	`, id)

	return scanEntry(row)
}

// DeleteEntry removes a journal entry
func (db *DB) DeleteEntry(id string) error {
	result, err := db.Exec("DELETE FROM journal_entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ListEntries returns entries ordered by date descending (newest first)
func (db *DB) ListEntries(limit, offset int) ([]Entry, error) {
	rows, err := db.Query(`
		SELECT `+entryColumns+`
		FROM journal_entries
		ORDER BY entry_date DESC, entry_time DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListEntriesInRange returns entries whose date falls within [start, end],
// inclusive on both ends, ordered by date ascending
func (db *DB) ListEntriesInRange(start, end time.Time) ([]Entry, error) {
	rows, err := db.Query(`
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date ASC, entry_time ASC
	`, start.Format(DateFormat), end.Format(DateFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListAllEntries returns the complete entry history ordered by date ascending
func (db *DB) ListAllEntries() ([]Entry, error) {
	rows, err := db.Query(`
		SELECT ` + entryColumns + `
		FROM journal_entries
		ORDER BY entry_date ASC, entry_time ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// CountEntries returns the total number of journal entries
func (db *DB) CountEntries() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM journal_entries").Scan(&count)
	return count, err
}

// scanEntry scans a single entry from a row
func scanEntry(row *sql.Row) (*Entry, error) {
	var e Entry
	var entryDate, createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.UserID, &e.WorkoutTypeID, &entryDate, &e.EntryTime,
		&e.MoodScore, &e.Title, &e.Notes, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := parseEntryTimes(&e, entryDate, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// scanEntries scans multiple entries from rows
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry

	for rows.Next() {
		var e Entry
		var entryDate, createdAt, updatedAt string

		err := rows.Scan(
			&e.ID, &e.UserID, &e.WorkoutTypeID, &entryDate, &e.EntryTime,
			&e.MoodScore, &e.Title, &e.Notes, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := parseEntryTimes(&e, entryDate, createdAt, updatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func parseEntryTimes(e *Entry, entryDate, createdAt, updatedAt string) error {
	var err error
	e.EntryDate, err = time.Parse(DateFormat, entryDate)
	if err != nil {
		return fmt.Errorf("parsing entry_date %q: %w", entryDate, err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return fmt.Errorf("parsing updated_at %q: %w", updatedAt, err)
	}
	return nil
}
