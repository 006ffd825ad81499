package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mentalpitch/internal/api"
	"mentalpitch/internal/store"
)

// SyncService orchestrates syncing data from the MentalPitch backend
type SyncService struct {
	client *api.Client
	store  *store.DB
}

// NewSyncService creates a new sync service
func NewSyncService(client *api.Client, store *store.DB) *SyncService {
	return &SyncService{
		client: client,
		store:  store,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase     string // "types", "entries"
	Total     int
	Completed int
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	TypesFetched   int
	EntriesFetched int
	EntriesStored  int
	Errors         []error
}

// SyncAll performs a full sync: workout types, then journal entries
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	// Phase 1: Workout-type catalog
	if err := s.syncWorkoutTypes(ctx, progress, result); err != nil {
		return result, fmt.Errorf("syncing workout types: %w", err)
	}

	// Phase 2: Journal entries
	if err := s.syncEntries(ctx, progress, result); err != nil {
		return result, fmt.Errorf("syncing entries: %w", err)
	}

	return result, nil
}

// syncWorkoutTypes refreshes the local workout-type catalog
func (s *SyncService) syncWorkoutTypes(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	if progress != nil {
		progress <- SyncProgress{Phase: "types"}
	}

	types, err := s.client.GetWorkoutTypes(ctx)
	if err != nil {
		return err
	}
	result.TypesFetched = len(types)

	for _, wt := range types {
		if err := s.store.UpsertWorkoutType(convertWorkoutType(wt)); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing workout type %s: %w", wt.ID, err))
		}
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "types", Total: len(types), Completed: len(types)}
	}
	return nil
}

// syncEntries fetches entries updated since the last sync and stores them
func (s *SyncService) syncEntries(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	// A zero watermark means full history
	updatedAfter, err := s.store.GetLastEntrySync()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("reading sync watermark: %w", err))
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "entries"}
	}

	entries, err := s.client.GetAllEntries(ctx, updatedAfter, func(fetched int) {
		if progress != nil {
			progress <- SyncProgress{Phase: "entries", Total: fetched}
		}
	})
	if err != nil {
		return err
	}
	result.EntriesFetched = len(entries)

	for _, e := range entries {
		storeEntry, err := convertEntry(e)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("converting entry %s: %w", e.ID, err))
			continue
		}
		if err := s.store.UpsertEntry(storeEntry); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing entry %s: %w", e.ID, err))
			continue
		}
		result.EntriesStored++
	}

	if progress != nil {
		progress <- SyncProgress{
			Phase:     "entries",
			Total:     result.EntriesFetched,
			Completed: result.EntriesStored,
		}
	}

	if err := s.store.SetLastEntrySync(time.Now()); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("recording sync watermark: %w", err))
	}

	return nil
}

// RateLimitStatus returns remaining API quota
func (s *SyncService) RateLimitStatus() (minuteRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}

// LogEntry creates a journal entry on the backend and mirrors it locally.
// date must be a calendar date; entryTime, moodScore, and workoutTypeID are
// optional.
func (s *SyncService) LogEntry(ctx context.Context, date time.Time, entryTime *string, moodScore *int, workoutTypeID *string, title, notes string) (*store.Entry, error) {
	stored, err := s.store.GetAuth()
	if err != nil {
		return nil, fmt.Errorf("loading auth: %w", err)
	}
	userID, err := uuid.Parse(stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("parsing user id %q: %w", stored.UserID, err)
	}

	payload := api.NewEntry{
		ID:        uuid.New(),
		UserID:    userID,
		EntryDate: date.Format(store.DateFormat),
		EntryTime: entryTime,
		MoodScore: moodScore,
		Title:     title,
		Notes:     notes,
	}
	if workoutTypeID != nil {
		// Only accept types present in the local catalog
		if _, err := s.store.GetWorkoutType(*workoutTypeID); err != nil {
			return nil, fmt.Errorf("looking up workout type %q: %w", *workoutTypeID, err)
		}
		id, err := uuid.Parse(*workoutTypeID)
		if err != nil {
			return nil, fmt.Errorf("parsing workout type id %q: %w", *workoutTypeID, err)
		}
		payload.WorkoutTypeID = &id
	}

	created, err := s.client.CreateEntry(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	entry, err := convertEntry(*created)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpsertEntry(entry); err != nil {
		return nil, fmt.Errorf("storing entry: %w", err)
	}

	return entry, nil
}
