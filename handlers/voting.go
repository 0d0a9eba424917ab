// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/donfarescobar/poll-web-apps/identity"
	"github.com/donfarescobar/poll-web-apps/middleware"
	"github.com/donfarescobar/poll-web-apps/models"
	"github.com/donfarescobar/poll-web-apps/voting"
)

type VotingHandler struct {
	votes *voting.Service
	ids   identity.Provider
}

func NewVotingHandler(votes *voting.Service, ids identity.Provider) *VotingHandler {
	return &VotingHandler{votes: votes, ids: ids}
}

// CastVote handles POST /polls/:id/votes
//
// A duplicate vote is not an error: the response is 200 with
// accepted=false and a reason, so clients can show it as information
// rather than a failure.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	voterID := h.ids.GetOrCreateVoterID(w, r)

	result, err := h.votes.CastVote(r.Context(), pollID, req.OptionID, voterID)
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "poll_id", pollID, "option_id", req.OptionID)
		storeErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Accepted: result.Accepted,
		Reason:   result.Reason,
		Poll:     result.Poll,
	})
}
