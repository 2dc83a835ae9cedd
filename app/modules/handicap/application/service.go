package handicapservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	handicapdomain "github.com/Black-And-White-Club/darts-league/app/modules/handicap/domain"
	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringservice "github.com/Black-And-White-Club/darts-league/app/modules/scoring/application"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// HandicapService implements the Service interface.
type HandicapService struct {
	leagues    leaguedb.Repository
	games      scoringdb.Repository
	averages   AverageSource
	authorizer authservice.Authorizer
	logger     *slog.Logger
	db         *bun.DB
	obs        operation.Observer
}

// NewHandicapService creates a new HandicapService.
func NewHandicapService(
	leagues leaguedb.Repository,
	games scoringdb.Repository,
	averages AverageSource,
	authorizer authservice.Authorizer,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *HandicapService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HandicapService{
		leagues:    leagues,
		games:      games,
		averages:   averages,
		authorizer: authorizer,
		logger:     logger,
		db:         db,
		obs:        operation.Observer{Service: "HandicapService", Logger: logger, Metrics: metrics, Tracer: tracer},
	}
}

// matchData is everything read from storage for one match.
type matchData struct {
	leagueID uuid.UUID
	match    leaguedomain.Match
	settings leaguedomain.HandicapSettings
	games    []scoringdomain.Game
	innings  map[uuid.UUID][]scoringdomain.Inning
}

// GetMatchHandicaps computes the handicap view of a match. Stored winners are
// reported as is and never changed.
func (s *HandicapService) GetMatchHandicaps(ctx context.Context, matchID uuid.UUID) (MatchHandicaps, error) {
	result, err := operation.Observe(ctx, s.obs, "GetMatchHandicaps", matchID.String(), func(ctx context.Context) (results.OperationResult[MatchHandicaps, error], error) {
		loaded, err := operation.InTx(ctx, s.db, operation.ReadOnly, func(ctx context.Context, db bun.IDB) (results.OperationResult[matchData, error], error) {
			md, err := s.loadMatch(ctx, db, matchID)
			if err != nil {
				return operation.Fail[matchData](err)
			}
			return results.SuccessResult[matchData, error](md), nil
		})
		md, err := operation.Unwrap(loaded, err)
		if err != nil {
			return operation.Fail[MatchHandicaps](err)
		}

		view := MatchHandicaps{
			MatchID:  matchID,
			SeasonID: md.match.SeasonID,
			Enabled:  md.settings.Enabled,
			Games:    make([]GameHandicap, 0, len(md.games)),
		}

		var averages map[uuid.UUID]float64
		if md.settings.Enabled {
			averages, err = s.averages.PlayerAverages(ctx, md.leagueID, md.match.SeasonID)
			if err != nil {
				return results.OperationResult[MatchHandicaps, error]{}, fmt.Errorf("failed to load player averages: %w", err)
			}
		}

		for _, g := range md.games {
			view.Games = append(view.Games, gameHandicap(g, md, averages))
		}

		s.logger.InfoContext(ctx, "Match handicaps computed",
			attr.ExtractCorrelationID(ctx),
			attr.MatchID(matchID),
			attr.Bool("enabled", md.settings.Enabled),
			attr.Int("games", len(view.Games)),
		)
		return results.SuccessResult[MatchHandicaps, error](view), nil
	})
	return operation.Unwrap(result, err)
}

// gameHandicap builds one game's line. Disabled handicap reports percent 0
// and the raw result.
func gameHandicap(g scoringdomain.Game, md matchData, averages map[uuid.UUID]float64) GameHandicap {
	rawHome, rawVisitor := scoringdomain.Totals(md.innings[g.ID])
	line := GameHandicap{
		GameID:       g.ID,
		Slot:         g.Slot,
		RawHome:      rawHome,
		RawVisitor:   rawVisitor,
		StoredWinner: g.Winner,
		Adjusted:     handicapdomain.DetermineHandicappedWinner(rawHome, rawVisitor, 0, nil),
	}

	switch {
	case g.IsDNP:
		line.Exempt, line.ExemptReason = true, ExemptDNP
	case g.HasBlind():
		line.Exempt, line.ExemptReason = true, ExemptBlind
	}

	if !md.settings.Enabled {
		return line
	}

	line.Percent = handicapdomain.ResolveHandicapPercent(md.settings, md.match.HandicapPercent, g.HandicapPercent)
	home, homeOK := averageOf(g.Home, averages)
	visitor, visitorOK := averageOf(g.Visitor, averages)
	if homeOK {
		line.HomeAverage = rounded(home)
	}
	if visitorOK {
		line.VisitorAverage = rounded(visitor)
	}
	if line.Exempt || !homeOK || !visitorOK {
		return line
	}

	line.Spot = handicapdomain.ComputeSpotRuns(home, visitor, line.Percent)
	line.Adjusted = handicapdomain.DetermineHandicappedWinner(rawHome, rawVisitor, line.Spot.Runs, line.Spot.Recipient)
	return line
}

func averageOf(slot scoringdomain.PlayerSlot, averages map[uuid.UUID]float64) (float64, bool) {
	id, ok := slot.PlayerID()
	if !ok {
		return 0, false
	}
	avg, ok := averages[id]
	return avg, ok
}

func rounded(avg float64) *float64 {
	r := handicapdomain.RoundAverage(avg)
	return &r
}

func (s *HandicapService) loadMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (matchData, error) {
	matchRow, err := s.leagues.GetMatch(ctx, db, matchID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return matchData{}, errs.NotFound("match", matchID.String())
		}
		return matchData{}, fmt.Errorf("failed to load match: %w", err)
	}
	leagueID, err := s.leagues.GetLeagueIDForMatch(ctx, db, matchID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return matchData{}, errs.NotFound("match", matchID.String())
		}
		return matchData{}, fmt.Errorf("failed to resolve league: %w", err)
	}
	if err := s.authorizer.RequireLeagueMember(ctx, leagueID); err != nil {
		return matchData{}, err
	}

	league, err := s.leagues.GetLeague(ctx, db, leagueID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return matchData{}, errs.NotFound("league", leagueID.String())
		}
		return matchData{}, fmt.Errorf("failed to load league: %w", err)
	}

	games, innings, err := scoringservice.LoadMatchGames(ctx, s.games, db, []uuid.UUID{matchID})
	if err != nil {
		return matchData{}, fmt.Errorf("failed to load games: %w", err)
	}

	return matchData{
		leagueID: leagueID,
		match:    matchRow.ToDomain(),
		settings: league.ToDomain().Config.Handicap,
		games:    games,
		innings:  innings,
	}, nil
}

var _ Service = (*HandicapService)(nil)
