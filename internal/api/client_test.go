package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	c := NewClient(srv.URL, src)
	c.rateLimiter.minInterval = 0
	return c
}

func makeEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			EntryDate: "2025-06-15",
			Title:     "Session",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}
	return entries
}

func TestGetAllEntriesPagination(t *testing.T) {
	pages := map[string][]Entry{
		"1": makeEntries(200),
		"2": makeEntries(3),
	}

	var requestedPages []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization header = %q", got)
		}
		if got := r.URL.Query().Get("order"); got != "updated_at.asc" {
			t.Errorf("order param = %q, want updated_at.asc", got)
		}
		page := r.URL.Query().Get("page")
		requestedPages = append(requestedPages, page)
		json.NewEncoder(w).Encode(pages[page])
	})

	var progress []int
	entries, err := client.GetAllEntries(context.Background(), time.Time{}, func(fetched int) {
		progress = append(progress, fetched)
	})
	if err != nil {
		t.Fatalf("GetAllEntries() error = %v", err)
	}

	if len(entries) != 203 {
		t.Errorf("got %d entries, want 203", len(entries))
	}
	if len(requestedPages) != 2 || requestedPages[0] != "1" || requestedPages[1] != "2" {
		t.Errorf("requested pages = %v, want [1 2]", requestedPages)
	}
	if len(progress) != 2 || progress[1] != 203 {
		t.Errorf("progress callbacks = %v, want [200 203]", progress)
	}
}

func TestGetEntriesUpdatedAfter(t *testing.T) {
	after := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("updated_after"); got != "2025-06-01T12:00:00Z" {
			t.Errorf("updated_after param = %q", got)
		}
		json.NewEncoder(w).Encode([]Entry{})
	})

	if _, err := client.GetEntries(context.Background(), after, 1, 200); err != nil {
		t.Fatalf("GetEntries() error = %v", err)
	}
}
