package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Client is a MentalPitch backend API client
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new API client. Requests are authenticated with
// tokens from the supplied source.
func NewClient(baseURL string, tokenSource oauth2.TokenSource) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		rateLimiter: NewRateLimiter(),
	}
}

// GetEntries fetches one page of journal entries updated after the given
// time, ordered oldest-first
func (c *Client) GetEntries(ctx context.Context, updatedAfter time.Time, page, perPage int) ([]Entry, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	if !updatedAfter.IsZero() {
		params.Set("updated_after", updatedAfter.UTC().Format(time.RFC3339))
	}
	params.Set("order", "updated_at.asc")
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	resp, err := c.get(ctx, "/v1/journal_entries", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding entries: %w", err)
	}

	return entries, nil
}

// GetAllEntries fetches all entries updated after a given time.
// It handles pagination automatically and respects rate limits.
func (c *Client) GetAllEntries(ctx context.Context, updatedAfter time.Time, onProgress func(fetched int)) ([]Entry, error) {
	var allEntries []Entry
	page := 1
	perPage := 200 // Max allowed by the backend

	for {
		entries, err := c.GetEntries(ctx, updatedAfter, page, perPage)
		if err != nil {
			return allEntries, fmt.Errorf("fetching page %d: %w", page, err)
		}

		if len(entries) == 0 {
			break
		}

		allEntries = append(allEntries, entries...)

		if onProgress != nil {
			onProgress(len(allEntries))
		}

		if len(entries) < perPage {
			break // Last page
		}

		page++
	}

	return allEntries, nil
}

// GetWorkoutTypes fetches the workout-type catalog
func (c *Client) GetWorkoutTypes(ctx context.Context) ([]WorkoutType, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "/v1/workout_types", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var types []WorkoutType
	if err := json.NewDecoder(resp.Body).Decode(&types); err != nil {
		return nil, fmt.Errorf("decoding workout types: %w", err)
	}

	return types, nil
}

// CreateEntry posts a new journal entry and returns the stored row
func (c *Client) CreateEntry(ctx context.Context, entry NewEntry) (*Entry, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encoding entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/journal_entries", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var created Entry
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding created entry: %w", err)
	}
	return &created, nil
}

// RateLimitStatus returns the current rate limit status
func (c *Client) RateLimitStatus() (minuteRemaining, dailyRemaining int) {
	return c.rateLimiter.Status()
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	// Update rate limiter from response headers
	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
