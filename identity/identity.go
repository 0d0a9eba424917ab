// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the cookie holding the anonymous voter id.
const CookieName = "voter_id"

// HeaderName lets non-browser clients supply their voter id directly.
const HeaderName = "X-Voter-ID"

// cookieMaxAge keeps the voter id for one year.
const cookieMaxAge = 365 * 24 * 60 * 60

// Provider yields a stable anonymous voter id for a request. It never
// fails: a caller that cannot be identified durably still gets a fresh
// id for the current request, at the cost of cross-request deduplication.
type Provider interface {
	GetOrCreateVoterID(w http.ResponseWriter, r *http.Request) string
}

// CookieProvider identifies voters by a long-lived cookie, minting and
// setting one on first contact. Clients that refuse cookies simply get a
// new id per request; their votes are not deduplicated across requests,
// which is the accepted degraded mode.
type CookieProvider struct{}

func NewCookieProvider() *CookieProvider {
	return &CookieProvider{}
}

func (p *CookieProvider) GetOrCreateVoterID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if v := r.Header.Get(HeaderName); v != "" {
		return v
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// StaticProvider always returns the same id. Tests use it to act as a
// fixed voter.
type StaticProvider struct {
	ID string
}

func (p *StaticProvider) GetOrCreateVoterID(http.ResponseWriter, *http.Request) string {
	return p.ID
}
