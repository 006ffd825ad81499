package store

import (
	"database/sql"
	"errors"
)

// UpsertWorkoutType inserts or updates a workout type
func (db *DB) UpsertWorkoutType(wt *WorkoutType) error {
	_, err := db.Exec(`
		INSERT INTO workout_types (id, name)
		VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name
	`, wt.ID, wt.Name)
	return err
}

// GetWorkoutType retrieves a workout type by ID
func (db *DB) GetWorkoutType(id string) (*WorkoutType, error) {
	var wt WorkoutType
	err := db.QueryRow(`
		SELECT id, name FROM workout_types WHERE id = ?
	`, id).Scan(&wt.ID, &wt.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wt, nil
}

// ListWorkoutTypes returns all workout types ordered by name
func (db *DB) ListWorkoutTypes() ([]WorkoutType, error) {
	rows, err := db.Query("SELECT id, name FROM workout_types ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []WorkoutType
	for rows.Next() {
		var wt WorkoutType
		if err := rows.Scan(&wt.ID, &wt.Name); err != nil {
			return nil, err
		}
		types = append(types, wt)
	}
	return types, rows.Err()
}

// WorkoutTypeNames returns an id -> display name lookup for all workout types
func (db *DB) WorkoutTypeNames() (map[string]string, error) {
	types, err := db.ListWorkoutTypes()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(types))
	for _, wt := range types {
		names[wt.ID] = wt.Name
	}
	return names, nil
}
