// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the poll server.

Configuration can come from CLI flags or environment variables, with CLI
flags taking precedence. A .env file is loaded by main before parsing, so
env-style deployment works in development too.

# Settings

Required:

  - FIRESTORE_PROJECT_ID (-project): Google Cloud project hosting Firestore

Optional:

  - PORT (-p): server port, default 8080
  - FIRESTORE_CREDENTIALS (-credentials): service account key file; when
    absent the Firestore client uses application default credentials
  - PUBLIC_BASE_URL (-base-url): base URL used when building poll share
    links, default http://localhost:8080

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		// missing project ID or malformed value
	}
*/
package cliparse
