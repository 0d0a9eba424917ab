// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donfarescobar/poll-web-apps/cliparse"
	"github.com/donfarescobar/poll-web-apps/identity"
	"github.com/donfarescobar/poll-web-apps/middleware"
	"github.com/donfarescobar/poll-web-apps/models"
	"github.com/donfarescobar/poll-web-apps/store"
	"github.com/donfarescobar/poll-web-apps/voting"
)

type PollHandler struct {
	store store.Store
	votes *voting.Service
	ids   identity.Provider
	cfg   cliparse.Config
}

func NewPollHandler(st store.Store, votes *voting.Service, ids identity.Provider, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: st, votes: votes, ids: ids, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input before any write
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	options := make([]models.NewOption, 0, len(req.Options))
	for _, opt := range req.Options {
		opt.Text = strings.TrimSpace(opt.Text)
		if opt.Text != "" {
			options = append(options, opt)
		}
	}
	if len(options) < models.MinOptions || len(options) > models.MaxOptions {
		middleware.ErrorResponse(w, http.StatusBadRequest, "polls need 2 to 5 non-empty options")
		return
	}

	pollID := uuid.NewString()
	poll := models.Poll{
		ID:        pollID,
		Question:  req.Question,
		CreatedAt: time.Now(),
	}

	if err := h.store.CreatePoll(r.Context(), poll); err != nil {
		slog.Error("failed to create poll", "error", err)
		storeErrorResponse(w, err)
		return
	}

	for i, opt := range options {
		err := h.store.CreateOption(r.Context(), models.Option{
			ID:       uuid.NewString(),
			PollID:   pollID,
			Text:     opt.Text,
			ImageURL: opt.ImageURL,
			Position: i,
		})
		if err != nil {
			slog.Error("failed to create option", "error", err, "poll_id", pollID)
			storeErrorResponse(w, err)
			return
		}
	}

	slog.Info("poll created", "poll_id", pollID, "options", len(options))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: pollID,
	})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		storeErrorResponse(w, err)
		return
	}

	for i := range polls {
		options, err := h.store.ListOptionsForPoll(r.Context(), polls[i].ID)
		if err != nil {
			slog.Error("failed to list options", "error", err, "poll_id", polls[i].ID)
			storeErrorResponse(w, err)
			return
		}
		polls[i].Options = options
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /polls/:id
// Resolves a shared link: returns the poll with options, the share URL,
// and whether the calling voter has already voted.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
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

	voterID := h.ids.GetOrCreateVoterID(w, r)
	hasVoted, err := h.votes.HasVoted(r.Context(), pollID, voterID)
	if err != nil {
		slog.Error("failed to check prior vote", "error", err, "poll_id", pollID)
		storeErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollDetail{
		Poll:     poll,
		ShareURL: h.cfg.BaseURL + "/polls/" + pollID,
		HasVoted: hasVoted,
	})
}

// DeletePoll handles DELETE /polls/:id
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	if err := h.store.DeletePoll(r.Context(), pollID); err != nil {
		storeErrorResponse(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePollResponse{
		Success: true,
	})
}
