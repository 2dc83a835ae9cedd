package scoringdb

import (
	"context"

	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for game, ledger and score entry persistence.
type Repository interface {
	// GetGame retrieves a game by id.
	GetGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*Game, error)

	// LockGame retrieves a game and locks its row for the rest of the
	// transaction, serializing concurrent writers of the same game.
	LockGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*Game, error)

	// ListGamesByMatches lists the games of the given matches ordered by match and slot.
	ListGamesByMatches(ctx context.Context, db bun.IDB, matchIDs []uuid.UUID) ([]Game, error)

	// InsertGames stores new pairings.
	InsertGames(ctx context.Context, db bun.IDB, games []Game) error

	// SetWinner records a game's winner; nil clears it.
	SetWinner(ctx context.Context, db bun.IDB, gameID uuid.UUID, winner *string) error

	// SetDNP sets the DNP flag; setting it clears the winner.
	SetDNP(ctx context.Context, db bun.IDB, gameID uuid.UUID, isDNP bool) error

	// ReplaceInnings deletes a game's ledger and inserts the given set.
	ReplaceInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID, innings []scoringdomain.Inning) error

	// ListInnings returns a game's ledger ordered by inning, home first.
	ListInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]Inning, error)

	// ListInningsByGames returns the ledgers of several games.
	ListInningsByGames(ctx context.Context, db bun.IDB, gameIDs []uuid.UUID) ([]Inning, error)

	// DeleteEntry removes a side's entry, if any.
	DeleteEntry(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string) error

	// InsertEntry stores a new entry.
	InsertEntry(ctx context.Context, db bun.IDB, entry *ScoreEntry) error

	// ListEntries returns the game's entries.
	ListEntries(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]ScoreEntry, error)

	// UpdateEntryStatus sets the status of a side's entry.
	UpdateEntryStatus(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string, status string) error
}
