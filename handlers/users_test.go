// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/donfarescobar/poll-web-apps/identity"
	"github.com/donfarescobar/poll-web-apps/models"
	"github.com/donfarescobar/poll-web-apps/testutil"
)

func TestGetMeDefaultUsername(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewUserHandler(st, &identity.StaticProvider{ID: "abcdef123"})

	req := testutil.MakeRequest("GET", "/me", nil, nil)
	w := httptest.NewRecorder()
	handler.GetMe(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.MeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoterID != "abcdef123" {
		t.Errorf("voter_id = %q", resp.VoterID)
	}
	if resp.Username != "User_abcd" {
		t.Errorf("username = %q, want User_abcd", resp.Username)
	}
}

func TestSetUsername(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewUserHandler(st, &identity.StaticProvider{ID: "voter-a"})

	req := testutil.MakeRequest("PUT", "/me/username", models.SetUsernameRequest{Username: "alice"}, nil)
	w := httptest.NewRecorder()
	handler.SetUsername(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// GetMe now returns the stored name
	req = testutil.MakeRequest("GET", "/me", nil, nil)
	w = httptest.NewRecorder()
	handler.GetMe(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.MeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Username != "alice" {
		t.Errorf("username = %q, want alice", resp.Username)
	}
}

func TestSetUsernameValidation(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewUserHandler(st, &identity.StaticProvider{ID: "voter-a"})

	tests := []struct {
		name     string
		username string
	}{
		{"too short", "a"},
		{"too long", strings.Repeat("x", 51)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/me/username", models.SetUsernameRequest{Username: tt.username}, nil)
			w := httptest.NewRecorder()
			handler.SetUsername(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}
