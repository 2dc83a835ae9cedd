package leaguedb

import "errors"

// Sentinel errors for the repository layer. The service layer decides whether
// a missing row is a domain failure.
var (
	// ErrNotFound indicates the requested league, season or match does not exist.
	ErrNotFound = errors.New("league record not found")
)
