// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record-level client over the four document
collections backing the poll service: polls, options, votes, and users.

# Contract

The Store interface exposes thin create/read/update/delete operations.
It enforces no cross-record invariants; the voting package owns those.
What the store does guarantee:

  - Every failure is one of ErrNotFound, ErrConflict, or ErrUnavailable.
    Raw transport errors never cross this boundary.
  - ListPolls returns newest first; ListOptionsForPoll returns options in
    their original creation order.
  - CreateVote enforces at most one vote per (poll, voter): the vote's
    document ID is derived from the pair, so a duplicate create collides
    in the backend itself and returns ErrConflict instead of silently
    double-inserting.
  - Counter updates are increments, not read-modify-write cycles. The
    Firestore implementation uses the server-side Increment transform.

# Implementations

Firestore talks to Cloud Firestore. Memory keeps everything in
mutex-guarded maps with identical semantics and is what the tests and
local runs use; the two are interchangeable behind the interface.
*/
package store
