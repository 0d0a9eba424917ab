// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/donfarescobar/poll-web-apps/identity"
	"github.com/donfarescobar/poll-web-apps/middleware"
	"github.com/donfarescobar/poll-web-apps/models"
	"github.com/donfarescobar/poll-web-apps/store"
)

type UserHandler struct {
	store store.Store
	ids   identity.Provider
}

func NewUserHandler(st store.Store, ids identity.Provider) *UserHandler {
	return &UserHandler{store: st, ids: ids}
}

// defaultUsername is shown until a voter picks a display name.
func defaultUsername(voterID string) string {
	if len(voterID) >= 4 {
		return "User_" + voterID[:4]
	}
	return "User_" + voterID
}

// GetMe handles GET /me
// Returns the caller's voter id and display name, minting an identity if
// this is the first contact.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	voterID := h.ids.GetOrCreateVoterID(w, r)

	user, err := h.store.GetUser(r.Context(), voterID)
	if errors.Is(err, store.ErrNotFound) {
		// No record yet: a derived default, nothing is written.
		middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
			VoterID:  voterID,
			Username: defaultUsername(voterID),
		})
		return
	}
	if err != nil {
		slog.Error("failed to get user", "error", err)
		storeErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		VoterID:  voterID,
		Username: user.Username,
	})
}

// SetUsername handles PUT /me/username
func (h *UserHandler) SetUsername(w http.ResponseWriter, r *http.Request) {
	var req models.SetUsernameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Username) < 2 || len(req.Username) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username must be 2-50 characters")
		return
	}

	voterID := h.ids.GetOrCreateVoterID(w, r)

	if err := h.store.UpsertUser(r.Context(), models.User{ID: voterID, Username: req.Username}); err != nil {
		slog.Error("failed to upsert user", "error", err)
		storeErrorResponse(w, err)
		return
	}

	slog.Info("username updated", "voter_id", voterID)

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		VoterID:  voterID,
		Username: req.Username,
	})
}
