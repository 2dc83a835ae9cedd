package scoringdb

import "errors"

// Sentinel errors for the repository layer.
// These are infrastructure-level errors that indicate database state, not business logic failures.
var (
	// ErrNotFound indicates the requested game does not exist in the database.
	ErrNotFound = errors.New("game not found")
)
