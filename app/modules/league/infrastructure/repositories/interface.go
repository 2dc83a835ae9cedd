package leaguedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for the league directory. Apart from the
// handicap settings it is read-only here; rows are created by the scheduling
// side of the application.
type Repository interface {
	// GetLeague retrieves a league with its configuration.
	GetLeague(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*League, error)

	// UpdateHandicapSettings overwrites a league's handicap policy.
	UpdateHandicapSettings(ctx context.Context, db bun.IDB, leagueID uuid.UUID, enabled bool, percent int, cadence string) error

	// GetSeason retrieves a season by id.
	GetSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*Season, error)

	// GetActiveSeason retrieves the league's active season.
	GetActiveSeason(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*Season, error)

	// ListTeams lists every team in the league.
	ListTeams(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]Team, error)

	// ListPlayers lists every player on a team in the league.
	ListPlayers(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]Player, error)

	// GetMatch retrieves a match by id.
	GetMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*Match, error)

	// ListMatchesBySeason lists a season's matches in schedule order.
	ListMatchesBySeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]Match, error)

	// GetLeagueIDForMatch resolves the league owning a match.
	GetLeagueIDForMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (uuid.UUID, error)
}
