// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the vote admission and counter protocol, the
one place where cross-record poll invariants are enforced.

# Protocol

CastVote runs a strict sequence: confirm the poll and option exist, check
whether this voter already voted, create the vote record, bump the
option's votes counter, bump the poll's votes_count, and re-read the poll
for the caller. Each step depends on the previous one; there is no
client-side locking.

# Consistency

Two rules keep the counters honest without multi-document transactions:

  - A vote's document ID is derived from (poll, voter), so the backend
    rejects a duplicate insert with a conflict even when two requests
    pass the prior-vote check simultaneously. The loser of that race is
    told "already voted"; nothing is double counted.
  - Counters are updated with backend-native atomic increments, and only
    after the vote record is durably created. A vote create failure
    leaves all counters untouched.

The remaining gap is a counter increment failing after the vote landed;
the vote stands, the undercount is logged and surfaced as an error, and
recounting from the votes collection is the out-of-band repair.

A (poll, voter) pair moves from no-vote to voted exactly once; votes are
never retracted.
*/
package voting
