package domain

import "errors"

// Domain errors represent business logic and upstream failures.
// Connectors map HTTP status codes onto these sentinels so the core
// never inspects status codes directly.
var (
	// ErrNotFound indicates a requested entity does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates the upstream API rate limit was exceeded.
	// It is surfaced to the caller verbatim and never retried.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotConfigured indicates a required credential is missing.
	// Code-host operations return this instead of attempting the call.
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidInput indicates malformed or invalid input.
	// Out-of-range limits are clamped, not rejected; this is reserved
	// for inputs that cannot be repaired (e.g. an empty id list).
	ErrInvalidInput = errors.New("invalid input")
)
