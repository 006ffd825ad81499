package auth

import (
	"testing"
	"time"

	"mentalpitch/internal/store"
)

func TestNewStoredTokenSource(t *testing.T) {
	stored := &store.Auth{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	ts := NewStoredTokenSource(nil, stored, nil)

	tok, err := ts.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "access-1" || tok.RefreshToken != "refresh-1" {
		t.Errorf("tokens = %q/%q, want access-1/refresh-1", tok.AccessToken, tok.RefreshToken)
	}
	if !tok.Expiry.Equal(stored.ExpiresAt) {
		t.Errorf("Expiry = %v, want %v", tok.Expiry, stored.ExpiresAt)
	}
	if ts.IsExpired() {
		t.Error("IsExpired() = true for a token valid for an hour")
	}
	if got := ts.CurrentToken(); got.AccessToken != "access-1" {
		t.Errorf("CurrentToken().AccessToken = %q, want access-1", got.AccessToken)
	}
}

func TestTokenSourceExpiryBuffer(t *testing.T) {
	tests := []struct {
		name    string
		expiry  time.Time
		expired bool
	}{
		{"well before expiry", time.Now().Add(time.Hour), false},
		{"inside refresh buffer", time.Now().Add(30 * time.Second), true},
		{"already expired", time.Now().Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewStoredTokenSource(nil, &store.Auth{
				AccessToken: "a",
				ExpiresAt:   tt.expiry,
			}, nil)
			if got := ts.IsExpired(); got != tt.expired {
				t.Errorf("IsExpired() = %v, want %v", got, tt.expired)
			}
		})
	}
}
