// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/donfarescobar/poll-web-apps/cliparse"
	"github.com/donfarescobar/poll-web-apps/models"
	"github.com/donfarescobar/poll-web-apps/store"
)

// NewTestStore returns a fresh in-memory store.
func NewTestStore(t *testing.T) *store.Memory {
	t.Helper()
	return store.NewMemory()
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      8080,
		ProjectID: "test-project",
		BaseURL:   "http://polls.test",
	}
}

// CreateTestPoll seeds a poll with the given option texts and returns
// the poll ID and option IDs.
func CreateTestPoll(t *testing.T, st store.Store, question string, optionTexts ...string) (string, []string) {
	t.Helper()
	ctx := context.Background()

	pollID := uuid.NewString()
	if err := st.CreatePoll(ctx, models.Poll{ID: pollID, Question: question, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]string, 0, len(optionTexts))
	for i, text := range optionTexts {
		optID := uuid.NewString()
		err := st.CreateOption(ctx, models.Option{ID: optID, PollID: pollID, Text: text, Position: i})
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optID)
	}

	return pollID, optionIDs
}

// CastTestVote records a vote and bumps both counters, as an accepted
// cast would.
func CastTestVote(t *testing.T, st store.Store, pollID, optionID, voterID string) {
	t.Helper()
	ctx := context.Background()

	err := st.CreateVote(ctx, models.Vote{PollID: pollID, OptionID: optionID, VoterID: voterID, CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	if err := st.IncrementOptionVotes(ctx, optionID, 1); err != nil {
		t.Fatalf("Failed to bump option counter: %v", err)
	}
	if err := st.IncrementPollVotes(ctx, pollID, 1); err != nil {
		t.Fatalf("Failed to bump poll counter: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
