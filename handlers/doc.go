// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers for the poll API.

# Handler Groups

  - PollHandler: poll lifecycle (create with 2-5 options, list, fetch,
    delete). Validation happens before any store write.
  - VotingHandler: vote casting. Duplicate votes come back as a normal
    200 with accepted=false, never as an error status.
  - ResultsHandler: read-only aggregation views (percentages, rankings,
    activity series) computed by the views package.
  - UserHandler: the caller's anonymous identity and display name.

# Dependencies

Handlers receive the store, the voting service, and the identity
provider through constructors; nothing reaches for process-wide state.
Store failures are mapped to HTTP statuses in one place
(storeErrorResponse): 404 for missing records, 409 for conflicting
writes, 503 for backend outages.
*/
package handlers
