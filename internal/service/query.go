package service

import (
	"time"

	"mentalpitch/internal/stats"
	"mentalpitch/internal/store"
)

// QueryService provides read-only queries for the TUI.
// The wall clock lives here; the stats functions themselves are clock-free.
type QueryService struct {
	store *store.DB
	now   func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB) *QueryService {
	return &QueryService{
		store: db,
		now:   time.Now,
	}
}

// EntryWithType pairs a journal entry with its workout-type display name
type EntryWithType struct {
	Entry           store.Entry
	WorkoutTypeName string // empty if the entry has no workout type
}

// GetStatsReport computes the full statistics report for a period.
// The window entries and the all-time history are independent reads; the
// aggregation itself is pure computation over both.
func (q *QueryService) GetStatsReport(period stats.Period) (*stats.Report, error) {
	today := q.now()
	start, end := period.Range(today)

	windowEntries, err := q.store.ListEntriesInRange(start, end)
	if err != nil {
		return nil, err
	}

	allEntries, err := q.store.ListAllEntries()
	if err != nil {
		return nil, err
	}

	typeNames, err := q.store.WorkoutTypeNames()
	if err != nil {
		return nil, err
	}

	report := stats.BuildReport(period, today, windowEntries, allEntries, typeNames)
	return &report, nil
}

// GetProfile computes the all-time profile summary
func (q *QueryService) GetProfile() (*stats.Profile, error) {
	allEntries, err := q.store.ListAllEntries()
	if err != nil {
		return nil, err
	}

	typeNames, err := q.store.WorkoutTypeNames()
	if err != nil {
		return nil, err
	}

	profile := stats.BuildProfile(allEntries, typeNames, q.now())
	return &profile, nil
}

// GetRecentEntries returns a page of entries, newest first, with workout-type
// names resolved
func (q *QueryService) GetRecentEntries(limit, offset int) ([]EntryWithType, error) {
	entries, err := q.store.ListEntries(limit, offset)
	if err != nil {
		return nil, err
	}

	typeNames, err := q.store.WorkoutTypeNames()
	if err != nil {
		return nil, err
	}

	result := make([]EntryWithType, len(entries))
	for i, e := range entries {
		et := EntryWithType{Entry: e}
		if e.WorkoutTypeID != nil {
			et.WorkoutTypeName = typeNames[*e.WorkoutTypeID]
		}
		result[i] = et
	}
	return result, nil
}

// CountEntries returns the total number of cached entries
func (q *QueryService) CountEntries() (int, error) {
	return q.store.CountEntries()
}

// ListWorkoutTypes returns the cached workout-type catalog
func (q *QueryService) ListWorkoutTypes() ([]store.WorkoutType, error) {
	return q.store.ListWorkoutTypes()
}
