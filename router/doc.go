// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the poll API using Go 1.22+
method-aware routing.

# Routes

Poll lifecycle:

	GET    /polls             list polls, newest first
	POST   /polls             create a poll with 2-5 options
	GET    /polls/{id}        fetch one poll (share-link resolution)
	DELETE /polls/{id}        delete a poll and everything under it

Voting:

	POST   /polls/{id}/votes  cast a vote for one option

Aggregated views:

	GET    /polls/top         polls ranked by total votes
	GET    /polls/activity    chronological poll activity series
	GET    /polls/{id}/results per-option counts and percentages

Voter identity:

	GET    /me                caller's voter id and display name
	PUT    /me/username       set the display name

Handlers are constructed here with their dependencies (store, voting
service, identity provider) injected; the router owns no state of its
own.
*/
package router
