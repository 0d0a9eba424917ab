// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/donfarescobar/poll-web-apps/models"
)

// Memory implements Store with mutex-guarded maps. It backs the test
// suite and local development runs, and mirrors the Firestore
// implementation's semantics: same error taxonomy, same vote uniqueness
// rule, same ordering guarantees.
type Memory struct {
	mu      sync.RWMutex
	polls   map[string]models.Poll
	options map[string]models.Option
	votes   map[string]models.Vote
	users   map[string]models.User
	seq     map[string]int // poll insertion order, for stable list ties
	nextSeq int
}

func NewMemory() *Memory {
	return &Memory{
		polls:   make(map[string]models.Poll),
		options: make(map[string]models.Option),
		votes:   make(map[string]models.Vote),
		users:   make(map[string]models.User),
		seq:     make(map[string]int),
	}
}

func (m *Memory) CreatePoll(ctx context.Context, poll models.Poll) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.polls[poll.ID]; exists {
		return fmt.Errorf("create poll: %w", ErrConflict)
	}
	poll.Options = nil
	m.polls[poll.ID] = poll
	m.seq[poll.ID] = m.nextSeq
	m.nextSeq++
	return nil
}

func (m *Memory) GetPoll(ctx context.Context, id string) (models.Poll, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	poll, exists := m.polls[id]
	if !exists {
		return models.Poll{}, fmt.Errorf("get poll: %w", ErrNotFound)
	}
	return poll, nil
}

func (m *Memory) ListPolls(ctx context.Context) ([]models.Poll, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	polls := make([]models.Poll, 0, len(m.polls))
	for _, p := range m.polls {
		polls = append(polls, p)
	}
	// Newest first; insertion order breaks created_at ties so repeated
	// calls return the same ordering.
	sort.SliceStable(polls, func(i, j int) bool {
		if !polls[i].CreatedAt.Equal(polls[j].CreatedAt) {
			return polls[i].CreatedAt.After(polls[j].CreatedAt)
		}
		return m.seq[polls[i].ID] > m.seq[polls[j].ID]
	})
	return polls, nil
}

func (m *Memory) DeletePoll(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.polls[id]; !exists {
		return fmt.Errorf("delete poll: %w", ErrNotFound)
	}
	delete(m.polls, id)
	delete(m.seq, id)
	for optID, opt := range m.options {
		if opt.PollID == id {
			delete(m.options, optID)
		}
	}
	for voteID, vote := range m.votes {
		if vote.PollID == id {
			delete(m.votes, voteID)
		}
	}
	return nil
}

func (m *Memory) CreateOption(ctx context.Context, opt models.Option) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.options[opt.ID]; exists {
		return fmt.Errorf("create option: %w", ErrConflict)
	}
	m.options[opt.ID] = opt
	return nil
}

func (m *Memory) ListOptionsForPoll(ctx context.Context, pollID string) ([]models.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	options := []models.Option{}
	for _, opt := range m.options {
		if opt.PollID == pollID {
			options = append(options, opt)
		}
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Position < options[j].Position
	})
	return options, nil
}

func (m *Memory) IncrementOptionVotes(ctx context.Context, optionID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	opt, exists := m.options[optionID]
	if !exists {
		return fmt.Errorf("increment option votes: %w", ErrNotFound)
	}
	opt.Votes += delta
	m.options[optionID] = opt
	return nil
}

func (m *Memory) IncrementPollVotes(ctx context.Context, pollID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	poll, exists := m.polls[pollID]
	if !exists {
		return fmt.Errorf("increment poll votes: %w", ErrNotFound)
	}
	poll.VotesCount += delta
	m.polls[pollID] = poll
	return nil
}

func (m *Memory) CreateVote(ctx context.Context, vote models.Vote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docID := VoteDocID(vote.PollID, vote.VoterID)
	if _, exists := m.votes[docID]; exists {
		return fmt.Errorf("create vote: %w", ErrConflict)
	}
	vote.ID = docID
	m.votes[docID] = vote
	return nil
}

func (m *Memory) ListVotes(ctx context.Context, pollID, voterID string) ([]models.Vote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	votes := []models.Vote{}
	for _, vote := range m.votes {
		if vote.PollID == pollID && vote.VoterID == voterID {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}

func (m *Memory) GetUser(ctx context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, exists := m.users[id]
	if !exists {
		return models.User{}, fmt.Errorf("get user: %w", ErrNotFound)
	}
	return user, nil
}

func (m *Memory) UpsertUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}
