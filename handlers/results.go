// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/donfarescobar/poll-web-apps/middleware"
	"github.com/donfarescobar/poll-web-apps/store"
	"github.com/donfarescobar/poll-web-apps/views"
)

type ResultsHandler struct {
	store store.Store
}

func NewResultsHandler(st store.Store) *ResultsHandler {
	return &ResultsHandler{store: st}
}

// GetResults handles GET /polls/:id/results
// Returns per-option vote counts and integer percentages.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if err != nil {
		storeErrorResponse(w, err)
		return
	}
	options, err := h.store.ListOptionsForPoll(r.Context(), pollID)
	if err != nil {
		slog.Error("failed to list options", "error", err, "poll_id", pollID)
		storeErrorResponse(w, err)
		return
	}
	poll.Options = options

	middleware.JSONResponse(w, http.StatusOK, views.Results(poll))
}

// GetTop handles GET /polls/top
// Returns all polls ranked by total votes, most voted first.
func (h *ResultsHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		storeErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views.RankPolls(polls))
}

// GetActivity handles GET /polls/activity
// Returns the chronological (created_at, votes_count) series across all
// polls.
func (h *ResultsHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		storeErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views.TimeSeries(polls))
}
