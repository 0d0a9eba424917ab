// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers shared by
all handlers.

  - WithLogging: request start/completion logging with timing
  - CORS: permissive cross-origin handling, credentials allowed so the
    voter cookie survives cross-origin frontends
  - JSONResponse / ErrorResponse: uniform JSON output
  - ParseJSONBody: request body decoding
*/
package middleware
