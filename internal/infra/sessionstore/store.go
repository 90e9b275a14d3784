package sessionstore

import "errors"

var (
	// ErrNotFound covers both an unknown session id and one whose TTL
	// elapsed; callers cannot tell the difference and should not.
	ErrNotFound = errors.New("booking session not found or expired")
	// ErrConflict means the optimistic read-modify-write lost every retry.
	ErrConflict = errors.New("concurrent session update")
)

const maxUpdateRetries = 3
