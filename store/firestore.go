// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/donfarescobar/poll-web-apps/models"
)

// Firestore implements Store on top of Cloud Firestore.
//
// Counter updates use Firestore's server-side Increment transform, so two
// concurrent accepted votes can never lose an increment to a
// read-modify-write race.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (f *Firestore) CreatePoll(ctx context.Context, poll models.Poll) error {
	_, err := f.client.Collection(PollsCollection).Doc(poll.ID).Create(ctx, poll)
	return mapError("create poll", err)
}

func (f *Firestore) GetPoll(ctx context.Context, id string) (models.Poll, error) {
	doc, err := f.client.Collection(PollsCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.Poll{}, mapError("get poll", err)
	}
	var poll models.Poll
	if err := doc.DataTo(&poll); err != nil {
		return models.Poll{}, mapError("decode poll", err)
	}
	poll.ID = doc.Ref.ID
	return poll, nil
}

func (f *Firestore) ListPolls(ctx context.Context) ([]models.Poll, error) {
	iter := f.client.Collection(PollsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	polls := []models.Poll{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError("list polls", err)
		}
		var poll models.Poll
		if err := doc.DataTo(&poll); err != nil {
			return nil, mapError("decode poll", err)
		}
		poll.ID = doc.Ref.ID
		polls = append(polls, poll)
	}
	return polls, nil
}

// DeletePoll removes the poll and cascades to its options and votes. The
// cascade runs client-side: Firestore has no referential integrity, so
// dependent documents are queried and deleted one by one.
func (f *Firestore) DeletePoll(ctx context.Context, id string) error {
	// Confirm the poll exists so a bad ID reads as NotFound, not success.
	if _, err := f.client.Collection(PollsCollection).Doc(id).Get(ctx); err != nil {
		return mapError("delete poll", err)
	}

	for _, col := range []string{OptionsCollection, VotesCollection} {
		if err := f.deleteWhere(ctx, col, "poll_id", id); err != nil {
			return err
		}
	}

	_, err := f.client.Collection(PollsCollection).Doc(id).Delete(ctx)
	return mapError("delete poll", err)
}

func (f *Firestore) deleteWhere(ctx context.Context, collection, field, value string) error {
	iter := f.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return mapError("delete "+collection, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return mapError("delete "+collection, err)
		}
	}
}

func (f *Firestore) CreateOption(ctx context.Context, opt models.Option) error {
	_, err := f.client.Collection(OptionsCollection).Doc(opt.ID).Create(ctx, opt)
	return mapError("create option", err)
}

func (f *Firestore) ListOptionsForPoll(ctx context.Context, pollID string) ([]models.Option, error) {
	iter := f.client.Collection(OptionsCollection).
		Where("poll_id", "==", pollID).
		OrderBy("position", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	options := []models.Option{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError("list options", err)
		}
		var opt models.Option
		if err := doc.DataTo(&opt); err != nil {
			return nil, mapError("decode option", err)
		}
		opt.ID = doc.Ref.ID
		options = append(options, opt)
	}
	return options, nil
}

func (f *Firestore) IncrementOptionVotes(ctx context.Context, optionID string, delta int) error {
	_, err := f.client.Collection(OptionsCollection).Doc(optionID).Update(ctx, []firestore.Update{
		{Path: "votes", Value: firestore.Increment(delta)},
	})
	return mapError("increment option votes", err)
}

func (f *Firestore) IncrementPollVotes(ctx context.Context, pollID string, delta int) error {
	_, err := f.client.Collection(PollsCollection).Doc(pollID).Update(ctx, []firestore.Update{
		{Path: "votes_count", Value: firestore.Increment(delta)},
	})
	return mapError("increment poll votes", err)
}

func (f *Firestore) CreateVote(ctx context.Context, vote models.Vote) error {
	docID := VoteDocID(vote.PollID, vote.VoterID)
	_, err := f.client.Collection(VotesCollection).Doc(docID).Create(ctx, vote)
	return mapError("create vote", err)
}

func (f *Firestore) ListVotes(ctx context.Context, pollID, voterID string) ([]models.Vote, error) {
	iter := f.client.Collection(VotesCollection).
		Where("poll_id", "==", pollID).
		Where("user_id", "==", voterID).
		Documents(ctx)
	defer iter.Stop()

	votes := []models.Vote{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError("list votes", err)
		}
		var vote models.Vote
		if err := doc.DataTo(&vote); err != nil {
			return nil, mapError("decode vote", err)
		}
		vote.ID = doc.Ref.ID
		votes = append(votes, vote)
	}
	return votes, nil
}

func (f *Firestore) GetUser(ctx context.Context, id string) (models.User, error) {
	doc, err := f.client.Collection(UsersCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.User{}, mapError("get user", err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return models.User{}, mapError("decode user", err)
	}
	user.ID = doc.Ref.ID
	return user, nil
}

func (f *Firestore) UpsertUser(ctx context.Context, user models.User) error {
	_, err := f.client.Collection(UsersCollection).Doc(user.ID).Set(ctx, user)
	return mapError("upsert user", err)
}
