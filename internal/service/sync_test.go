package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"mentalpitch/internal/api"
	"mentalpitch/internal/store"
)

func setupSyncService(t *testing.T) (*SyncService, *store.DB) {
	t.Helper()

	db, err := store.OpenTest()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	// The client is never reached in these tests
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	client := api.NewClient("http://127.0.0.1:0", src)
	return NewSyncService(client, db), db
}

func TestLogEntryUnknownWorkoutType(t *testing.T) {
	svc, db := setupSyncService(t)

	auth := &store.Auth{
		UserID:      uuid.NewString(),
		Email:       "slugger@example.com",
		AccessToken: "t1",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if err := db.SaveAuth(auth); err != nil {
		t.Fatalf("SaveAuth() error = %v", err)
	}

	typeID := uuid.NewString()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.LogEntry(context.Background(), date, nil, nil, &typeID, "Session", "")
	if !errors.Is(err, store.ErrWorkoutTypeNotFound) {
		t.Errorf("LogEntry() with unknown type = %v, want ErrWorkoutTypeNotFound", err)
	}
}

func TestLogEntryRequiresAuth(t *testing.T) {
	svc, _ := setupSyncService(t)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.LogEntry(context.Background(), date, nil, nil, nil, "Session", "")
	if !errors.Is(err, store.ErrNoAuth) {
		t.Errorf("LogEntry() without auth = %v, want ErrNoAuth", err)
	}
}
