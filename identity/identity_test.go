// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCookieProviderMintsAndSetsCookie(t *testing.T) {
	p := NewCookieProvider()
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	id := p.GetOrCreateVoterID(w, r)
	if id == "" {
		t.Fatal("expected non-empty voter id")
	}

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == CookieName {
			found = c
		}
	}
	if found == nil {
		t.Fatal("expected voter_id cookie to be set")
	}
	if found.Value != id {
		t.Errorf("cookie value %q does not match returned id %q", found.Value, id)
	}
	if !found.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
}

func TestCookieProviderReusesExistingCookie(t *testing.T) {
	p := NewCookieProvider()
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "existing-id"})
	w := httptest.NewRecorder()

	if got := p.GetOrCreateVoterID(w, r); got != "existing-id" {
		t.Errorf("GetOrCreateVoterID() = %q, want existing-id", got)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("no new cookie should be set when one exists")
	}
}

func TestCookieProviderHeaderFallback(t *testing.T) {
	p := NewCookieProvider()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(HeaderName, "header-id")
	w := httptest.NewRecorder()

	if got := p.GetOrCreateVoterID(w, r); got != "header-id" {
		t.Errorf("GetOrCreateVoterID() = %q, want header-id", got)
	}
}

func TestCookieProviderMintsDistinctIDs(t *testing.T) {
	p := NewCookieProvider()

	first := p.GetOrCreateVoterID(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	second := p.GetOrCreateVoterID(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if first == second {
		t.Error("two fresh requests should get distinct voter ids")
	}
}

func TestStaticProvider(t *testing.T) {
	p := &StaticProvider{ID: "fixed"}
	if got := p.GetOrCreateVoterID(nil, nil); got != "fixed" {
		t.Errorf("StaticProvider returned %q", got)
	}
}
