// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/donfarescobar/poll-web-apps/cliparse"
	"github.com/donfarescobar/poll-web-apps/handlers"
	"github.com/donfarescobar/poll-web-apps/identity"
	"github.com/donfarescobar/poll-web-apps/middleware"
	"github.com/donfarescobar/poll-web-apps/store"
	"github.com/donfarescobar/poll-web-apps/voting"
)

func NewRouter(st store.Store, ids identity.Provider, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingService := voting.NewService(st)
	pollHandler := handlers.NewPollHandler(st, votingService, ids, cfg)
	votingHandler := handlers.NewVotingHandler(votingService, ids)
	resultsHandler := handlers.NewResultsHandler(st)
	userHandler := handlers.NewUserHandler(st, ids)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.CastVote))

	// Aggregated views
	mux.HandleFunc("GET /polls/top", middleware.WithLogging(resultsHandler.GetTop))
	mux.HandleFunc("GET /polls/activity", middleware.WithLogging(resultsHandler.GetActivity))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Voter identity
	mux.HandleFunc("GET /me", middleware.WithLogging(userHandler.GetMe))
	mux.HandleFunc("PUT /me/username", middleware.WithLogging(userHandler.SetUsername))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("poll-web-apps API v1"))
	})

	return mux
}
