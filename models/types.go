package models

import "time"

// Poll option bounds
const (
	MinOptions = 2
	MaxOptions = 5
)

// Request types

type NewOption struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
}

type CreatePollRequest struct {
	Question string      `json:"question"`
	Options  []NewOption `json:"options"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

type SetUsernameRequest struct {
	Username string `json:"username"`
}

// Response types

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
}

type CastVoteResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Poll     *Poll  `json:"poll,omitempty"`
}

type DeletePollResponse struct {
	Success bool `json:"success"`
}

type MeResponse struct {
	VoterID  string `json:"voter_id"`
	Username string `json:"username"`
}

// Domain types

type Poll struct {
	ID         string    `json:"id" firestore:"-"`
	Question   string    `json:"question" firestore:"question"`
	VotesCount int       `json:"votes_count" firestore:"votes_count"`
	CreatedAt  time.Time `json:"created_at" firestore:"created_at"`
	Options    []Option  `json:"options,omitempty" firestore:"-"`
}

type Option struct {
	ID       string `json:"id" firestore:"-"`
	PollID   string `json:"poll_id" firestore:"poll_id"`
	Text     string `json:"text" firestore:"text"`
	ImageURL string `json:"image_url,omitempty" firestore:"image_url,omitempty"`
	Position int    `json:"-" firestore:"position"`
	Votes    int    `json:"votes" firestore:"votes"`
}

type Vote struct {
	ID        string    `json:"id" firestore:"-"`
	PollID    string    `json:"poll_id" firestore:"poll_id"`
	OptionID  string    `json:"option_id" firestore:"option_id"`
	VoterID   string    `json:"-" firestore:"user_id"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

type User struct {
	ID       string `json:"id" firestore:"-"`
	Username string `json:"username" firestore:"username"`
}

type PollDetail struct {
	Poll     Poll   `json:"poll"`
	ShareURL string `json:"share_url"`
	HasVoted bool   `json:"has_voted"`
}

// Result view types

type OptionResult struct {
	OptionID string `json:"option_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
	Percent  int    `json:"percent"`
}

type PollResults struct {
	PollID     string         `json:"poll_id"`
	Question   string         `json:"question"`
	VotesCount int            `json:"votes_count"`
	Options    []OptionResult `json:"options"`
}

type ActivityPoint struct {
	CreatedAt  time.Time `json:"created_at"`
	VotesCount int       `json:"votes_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
