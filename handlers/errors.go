// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/donfarescobar/poll-web-apps/middleware"
	"github.com/donfarescobar/poll-web-apps/store"
)

// storeErrorResponse maps the store error taxonomy onto HTTP statuses.
// NotFound reads as "no longer available" (shared links outlive polls),
// Conflict as a conflicting write, and everything else as a retryable
// backend outage.
func storeErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "This poll is no longer available")
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Conflicting write, try again")
	default:
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Backend unavailable, try again")
	}
}
