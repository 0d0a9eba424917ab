// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types shared across the poll
server.

# Domain Types

Poll, Option, Vote and User mirror the four backing collections. A Poll
carries a denormalized votes_count equal to the sum of its options'
votes; both counters are maintained exclusively by the voting package.
A Vote is immutable and never exposes its voter id over JSON.

# Request/Response Types

The remaining types are the JSON bodies of the HTTP API. CastVoteResponse
is deliberately not an error container: a duplicate vote is a normal
negative outcome (Accepted=false, Reason="already voted"), not a failure.

Struct tags carry both JSON names (wire format) and firestore names
(document fields); the document ID is held in the ID field and excluded
from the stored fields.
*/
package models
