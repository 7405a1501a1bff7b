package fontbundle

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyBaseURL = errors.New("base URL cannot be empty")

	// Per-reference fetch errors. These never abort a Bundle run; they are
	// recorded in Result.Skipped and the affected references stay unchanged.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrUnsafeReference  = errors.New("font reference escapes cache directory")
)
