package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const lastEntrySyncKey = "last_entry_sync"

// GetLastEntrySync returns the watermark of the most recent entry sync.
// A zero time means no sync has completed yet.
func (db *DB) GetLastEntrySync() (time.Time, error) {
	var value string
	err := db.QueryRow(`
		SELECT value FROM sync_state WHERE key = ?
	`, lastEntrySyncKey).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing sync watermark %q: %w", value, err)
	}
	return t, nil
}

// SetLastEntrySync records the entry-sync watermark
func (db *DB) SetLastEntrySync(t time.Time) error {
	_, err := db.Exec(`
		INSERT INTO sync_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, lastEntrySyncKey, t.UTC().Format(time.RFC3339))
	return err
}
