// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the poll web app API server.

The service lets anyone create a poll with two to five options (optionally
illustrated with images), share a link to it, and collect votes. Each
browser gets a stable anonymous voter id, and a voter may vote at most
once per poll.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	FIRESTORE_PROJECT_ID=my-project go run main.go

Or with flags:

	go run main.go -p 8080 -project my-project -credentials serviceAccountKey.json

# Configuration

Required settings:

  - FIRESTORE_PROJECT_ID (-project): Google Cloud project hosting Firestore

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - FIRESTORE_CREDENTIALS (-credentials): service account key file
    (omit to use application default credentials)
  - PUBLIC_BASE_URL (-base-url): base URL used to build poll share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, results, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - store: Document-store client (Firestore, plus in-memory for tests)
  - voting: Vote admission and counter protocol
  - views: Read-only aggregations (percentages, rankings, activity)
  - identity: Anonymous voter identity
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
