// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity produces stable anonymous voter identifiers.

A voter id is a deduplication key, not a credential: it only has to stay
the same across requests from the same browser so that duplicate votes
can be rejected. The CookieProvider persists the id in a long-lived
cookie, accepts an explicit X-Voter-ID header from non-browser clients,
and falls back to a fresh per-request id when neither is available.

The Provider interface exists so other identity schemes (header-only,
account-based) can be injected without touching the handlers.
*/
package identity
