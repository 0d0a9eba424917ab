// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donfarescobar/poll-web-apps/models"
	"github.com/donfarescobar/poll-web-apps/store"
)

// ReasonAlreadyVoted is the Reason on a rejected duplicate vote.
const ReasonAlreadyVoted = "already voted"

// Result is the outcome of a cast attempt. A rejected duplicate is a
// normal negative result, not an error: Accepted is false, Reason says
// why, and the error return is nil.
type Result struct {
	Accepted bool
	Reason   string
	Poll     *models.Poll
}

// Service runs the vote admission and counter protocol over a Store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CastVote records one vote from voterID for optionID in pollID.
//
// The sequence is strict: validate the target, check for a prior vote,
// durably record the vote, then bump the option and poll counters and
// re-read the poll for the caller. Counters are never touched unless the
// vote record landed; the store's per-(poll, voter) uniqueness turns the
// race between the prior-vote check and the insert into a clean
// ErrConflict, which reads as a duplicate rather than a double count.
func (s *Service) CastVote(ctx context.Context, pollID, optionID, voterID string) (Result, error) {
	// The option must exist and belong to the poll. Listing the poll's
	// options also confirms the poll itself exists.
	if _, err := s.store.GetPoll(ctx, pollID); err != nil {
		return Result{}, err
	}
	options, err := s.store.ListOptionsForPoll(ctx, pollID)
	if err != nil {
		return Result{}, err
	}
	valid := false
	for _, opt := range options {
		if opt.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return Result{}, fmt.Errorf("option %s not in poll %s: %w", optionID, pollID, store.ErrNotFound)
	}

	// One vote per (poll, voter).
	votes, err := s.store.ListVotes(ctx, pollID, voterID)
	if err != nil {
		return Result{}, err
	}
	if len(votes) > 0 {
		return Result{Accepted: false, Reason: ReasonAlreadyVoted}, nil
	}

	err = s.store.CreateVote(ctx, models.Vote{
		PollID:    pollID,
		OptionID:  optionID,
		VoterID:   voterID,
		CreatedAt: time.Now(),
	})
	if errors.Is(err, store.ErrConflict) {
		// Lost a race with another request from the same voter.
		return Result{Accepted: false, Reason: ReasonAlreadyVoted}, nil
	}
	if err != nil {
		return Result{}, err
	}

	// The vote is durable from here on. A counter failure below leaves a
	// recorded vote with a stale counter; that undercount is logged and
	// reported, but not unwound.
	if err := s.store.IncrementOptionVotes(ctx, optionID, 1); err != nil {
		slog.Error("vote recorded but option counter not updated", "poll_id", pollID, "option_id", optionID, "error", err)
		return Result{}, fmt.Errorf("vote recorded, option counter stale: %w", err)
	}
	if err := s.store.IncrementPollVotes(ctx, pollID, 1); err != nil {
		slog.Error("vote recorded but poll counter not updated", "poll_id", pollID, "error", err)
		return Result{}, fmt.Errorf("vote recorded, poll counter stale: %w", err)
	}

	poll, err := s.fetchPoll(ctx, pollID)
	if err != nil {
		return Result{}, err
	}

	slog.Info("vote accepted", "poll_id", pollID, "option_id", optionID)
	return Result{Accepted: true, Poll: &poll}, nil
}

// HasVoted reports whether voterID has already voted in pollID.
func (s *Service) HasVoted(ctx context.Context, pollID, voterID string) (bool, error) {
	votes, err := s.store.ListVotes(ctx, pollID, voterID)
	if err != nil {
		return false, err
	}
	return len(votes) > 0, nil
}

// fetchPoll reads the poll with its options attached.
func (s *Service) fetchPoll(ctx context.Context, pollID string) (models.Poll, error) {
	poll, err := s.store.GetPoll(ctx, pollID)
	if err != nil {
		return models.Poll{}, err
	}
	options, err := s.store.ListOptionsForPoll(ctx, pollID)
	if err != nil {
		return models.Poll{}, err
	}
	poll.Options = options
	return poll, nil
}
