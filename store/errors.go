// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error taxonomy for the store boundary. All transport-level failures are
// converted to one of these before they leave this package; callers never
// see raw backend errors.
var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the backend could not be reached or timed out.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
)

// mapError converts a backend error into the store taxonomy, keeping the
// operation name for logs.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		// Unavailable, DeadlineExceeded, and anything unexpected all read
		// as a transient backend failure to callers.
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
}
