package standingsservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringservice "github.com/Black-And-White-Club/darts-league/app/modules/scoring/application"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// StandingsService implements the Service and AverageSource interfaces.
type StandingsService struct {
	leagues    leaguedb.Repository
	games      scoringdb.Repository
	authorizer authservice.Authorizer
	logger     *slog.Logger
	db         *bun.DB
	obs        operation.Observer
	palette    ChartPalette
}

// NewStandingsService creates a new StandingsService.
func NewStandingsService(
	leagues leaguedb.Repository,
	games scoringdb.Repository,
	authorizer authservice.Authorizer,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StandingsService{
		leagues:    leagues,
		games:      games,
		authorizer: authorizer,
		logger:     logger,
		db:         db,
		obs:        operation.Observer{Service: "StandingsService", Logger: logger, Metrics: metrics, Tracer: tracer},
		palette:    DefaultPalette,
	}
}

// seasonContext is a resolved season with its league configuration and data.
type seasonContext struct {
	season leaguedomain.Season
	config leaguedomain.Config
	data   standingsdomain.SeasonData
}

// resolveSeason returns the explicit season, which must belong to the league,
// or the league's active season.
func (s *StandingsService) resolveSeason(ctx context.Context, db bun.IDB, leagueID uuid.UUID, seasonID *uuid.UUID) (leaguedomain.Season, error) {
	if seasonID != nil {
		row, err := s.leagues.GetSeason(ctx, db, *seasonID)
		if err != nil {
			if errors.Is(err, leaguedb.ErrNotFound) {
				return leaguedomain.Season{}, errs.NotFound("season", seasonID.String())
			}
			return leaguedomain.Season{}, fmt.Errorf("failed to load season: %w", err)
		}
		if row.LeagueID != leagueID {
			return leaguedomain.Season{}, errs.NotFound("season", seasonID.String())
		}
		return row.ToDomain(), nil
	}

	row, err := s.leagues.GetActiveSeason(ctx, db, leagueID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return leaguedomain.Season{}, errs.NotFound("active season", "")
		}
		return leaguedomain.Season{}, fmt.Errorf("failed to load active season: %w", err)
	}
	return row.ToDomain(), nil
}

// loadSeason reads the league configuration and every record the
// aggregators need for one season.
func (s *StandingsService) loadSeason(ctx context.Context, db bun.IDB, leagueID uuid.UUID, seasonID *uuid.UUID) (seasonContext, error) {
	league, err := s.leagues.GetLeague(ctx, db, leagueID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return seasonContext{}, errs.NotFound("league", leagueID.String())
		}
		return seasonContext{}, fmt.Errorf("failed to load league: %w", err)
	}

	season, err := s.resolveSeason(ctx, db, leagueID, seasonID)
	if err != nil {
		return seasonContext{}, err
	}

	matchRows, err := s.leagues.ListMatchesBySeason(ctx, db, season.ID)
	if err != nil {
		return seasonContext{}, fmt.Errorf("failed to list matches: %w", err)
	}
	matches := make([]leaguedomain.Match, len(matchRows))
	matchIDs := make([]uuid.UUID, len(matchRows))
	for i := range matchRows {
		matches[i] = matchRows[i].ToDomain()
		matchIDs[i] = matchRows[i].ID
	}

	games, innings, err := scoringservice.LoadMatchGames(ctx, s.games, db, matchIDs)
	if err != nil {
		return seasonContext{}, fmt.Errorf("failed to load games: %w", err)
	}

	teamRows, err := s.leagues.ListTeams(ctx, db, leagueID)
	if err != nil {
		return seasonContext{}, fmt.Errorf("failed to list teams: %w", err)
	}
	teams := make([]leaguedomain.Team, len(teamRows))
	for i := range teamRows {
		teams[i] = teamRows[i].ToDomain()
	}

	playerRows, err := s.leagues.ListPlayers(ctx, db, leagueID)
	if err != nil {
		return seasonContext{}, fmt.Errorf("failed to list players: %w", err)
	}
	players := make([]leaguedomain.Player, len(playerRows))
	for i := range playerRows {
		players[i] = playerRows[i].ToDomain()
	}

	return seasonContext{
		season: season,
		config: league.ToDomain().Config,
		data: standingsdomain.SeasonData{
			Matches: matches,
			Games:   games,
			Innings: innings,
			Teams:   teams,
			Players: players,
		},
	}, nil
}

var (
	_ Service       = (*StandingsService)(nil)
	_ AverageSource = (*StandingsService)(nil)
)
