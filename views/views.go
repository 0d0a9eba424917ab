// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"math"
	"sort"

	"github.com/donfarescobar/poll-web-apps/models"
)

// Percentages returns the integer percentage of the total vote each
// option holds, in option order. All zeros when nothing has been voted
// yet, so callers never divide by zero.
func Percentages(options []models.Option) []int {
	total := 0
	for _, opt := range options {
		total += opt.Votes
	}

	percents := make([]int, len(options))
	if total == 0 {
		return percents
	}
	for i, opt := range options {
		percents[i] = int(math.Round(100 * float64(opt.Votes) / float64(total)))
	}
	return percents
}

// Results assembles the per-option result view for a poll whose options
// are already attached.
func Results(poll models.Poll) models.PollResults {
	percents := Percentages(poll.Options)
	results := models.PollResults{
		PollID:     poll.ID,
		Question:   poll.Question,
		VotesCount: poll.VotesCount,
		Options:    make([]models.OptionResult, len(poll.Options)),
	}
	for i, opt := range poll.Options {
		results.Options[i] = models.OptionResult{
			OptionID: opt.ID,
			Text:     opt.Text,
			Votes:    opt.Votes,
			Percent:  percents[i],
		}
	}
	return results
}

// RankPolls orders polls by total votes, most voted first. The sort is
// stable: ties keep the order the polls were fetched in.
func RankPolls(polls []models.Poll) []models.Poll {
	ranked := make([]models.Poll, len(polls))
	copy(ranked, polls)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VotesCount > ranked[j].VotesCount
	})
	return ranked
}

// TimeSeries projects polls onto (created_at, votes_count) points in
// chronological order.
func TimeSeries(polls []models.Poll) []models.ActivityPoint {
	points := make([]models.ActivityPoint, len(polls))
	for i, p := range polls {
		points[i] = models.ActivityPoint{CreatedAt: p.CreatedAt, VotesCount: p.VotesCount}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].CreatedAt.Before(points[j].CreatedAt)
	})
	return points
}
