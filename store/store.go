// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/donfarescobar/poll-web-apps/models"
)

// Collection names in the backing document database.
const (
	PollsCollection   = "polls"
	OptionsCollection = "options"
	VotesCollection   = "votes"
	UsersCollection   = "users"
)

// Store is the record-level client over the four poll collections.
//
// Operations are thin: none of them enforces cross-record invariants
// (that is the voting package's job). Every method returns ErrNotFound,
// ErrConflict, or ErrUnavailable for the failure modes it can hit.
type Store interface {
	// Polls
	CreatePoll(ctx context.Context, poll models.Poll) error
	GetPoll(ctx context.Context, id string) (models.Poll, error)
	ListPolls(ctx context.Context) ([]models.Poll, error) // created_at descending
	DeletePoll(ctx context.Context, id string) error      // cascades to options and votes

	// Options
	CreateOption(ctx context.Context, opt models.Option) error
	ListOptionsForPoll(ctx context.Context, pollID string) ([]models.Option, error) // position ascending
	IncrementOptionVotes(ctx context.Context, optionID string, delta int) error

	// Denormalized poll counter
	IncrementPollVotes(ctx context.Context, pollID string, delta int) error

	// Votes
	CreateVote(ctx context.Context, vote models.Vote) error // ErrConflict when (poll, voter) already voted
	ListVotes(ctx context.Context, pollID, voterID string) ([]models.Vote, error)

	// Users
	GetUser(ctx context.Context, id string) (models.User, error)
	UpsertUser(ctx context.Context, user models.User) error
}

// VoteDocID derives the document ID for a vote. Using a deterministic ID
// per (poll, voter) makes the backend itself enforce the one-vote-per-
// voter invariant: a second create collides and surfaces as ErrConflict.
func VoteDocID(pollID, voterID string) string {
	return pollID + "_" + voterID
}
