package standingsservice

import (
	"context"

	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/google/uuid"
)

// Service exposes season standings and leaderboards.
type Service interface {
	// GetStandings ranks the season's teams (league member). A nil season means
	// the league's active season.
	GetStandings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) (StandingsView, error)

	// ExportStandings renders GetStandings as an XLSX workbook (league member).
	ExportStandings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) ([]byte, error)

	// GetLeaderboards returns the five top-10 player lists (league member).
	GetLeaderboards(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID) (LeaderboardsView, error)

	// LeaderboardChart renders one category as a PNG bar chart (league member).
	LeaderboardChart(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, category standingsdomain.Category) ([]byte, error)
}

// AverageSource supplies un-rounded player season averages. Callers are
// expected to have authorized the request already.
type AverageSource interface {
	PlayerAverages(ctx context.Context, leagueID uuid.UUID, seasonID uuid.UUID) (map[uuid.UUID]float64, error)
}

// StandingsView is a season's ranked standings.
type StandingsView struct {
	LeagueID   uuid.UUID                     `json:"leagueId"`
	SeasonID   uuid.UUID                     `json:"seasonId"`
	SeasonName string                        `json:"seasonName"`
	Division   *string                       `json:"division,omitempty"`
	Rows       []standingsdomain.StandingRow `json:"rows"`
}

// LeaderboardsView is a season's leaderboards.
type LeaderboardsView struct {
	LeagueID     uuid.UUID                    `json:"leagueId"`
	SeasonID     uuid.UUID                    `json:"seasonId"`
	SeasonName   string                       `json:"seasonName"`
	Leaderboards standingsdomain.Leaderboards `json:"leaderboards"`
}
