package scoringservice

import (
	"context"
	"errors"
	"fmt"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SetDNP flags a game as not played, clearing its winner, or unflags it.
// Unflagging does not recompute the winner.
func (s *ScoringService) SetDNP(ctx context.Context, gameID uuid.UUID, isDNP bool) (scoringdomain.Game, error) {
	result, err := operation.Observe(ctx, s.obs, "SetDNP", gameID.String(), func(ctx context.Context) (results.OperationResult[scoringdomain.Game, error], error) {
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[scoringdomain.Game, error], error) {
			gc, err := s.loadGame(ctx, db, gameID, true)
			if err != nil {
				return operation.Fail[scoringdomain.Game](err)
			}
			if err := s.authorizer.RequireRole(ctx, gc.leagueID, authdomain.RoleCaptain, authdomain.RoleAdmin); err != nil {
				return operation.Fail[scoringdomain.Game](err)
			}

			if err := s.repo.SetDNP(ctx, db, gameID, isDNP); err != nil {
				return results.OperationResult[scoringdomain.Game, error]{}, fmt.Errorf("failed to set DNP: %w", err)
			}

			game := gc.game
			game.IsDNP = isDNP
			if isDNP {
				game.Winner = scoringdomain.WinnerUndetermined
			}
			s.logger.InfoContext(ctx, "Game DNP flag updated",
				attr.ExtractCorrelationID(ctx),
				attr.GameID(gameID),
				attr.Bool("is_dnp", isDNP),
			)
			return results.SuccessResult[scoringdomain.Game, error](game), nil
		})
	})
	return operation.Unwrap(result, err)
}

// ApplyBlindScore replaces the ledger of a game against the blind with the
// placeholder innings: the league's blind default runs for the blind side every
// regulation inning, zero for the real player. The winner is not recomputed.
func (s *ScoringService) ApplyBlindScore(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error) {
	result, err := operation.Observe(ctx, s.obs, "ApplyBlindScore", gameID.String(), func(ctx context.Context) (results.OperationResult[[]scoringdomain.Inning, error], error) {
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]scoringdomain.Inning, error], error) {
			gc, err := s.loadGame(ctx, db, gameID, true)
			if err != nil {
				return operation.Fail[[]scoringdomain.Inning](err)
			}
			if err := s.authorizer.RequireRole(ctx, gc.leagueID, authdomain.RoleCaptain, authdomain.RoleAdmin); err != nil {
				return operation.Fail[[]scoringdomain.Inning](err)
			}

			blind, err := scoringdomain.BlindSide(gc.game.Home, gc.game.Visitor)
			if err != nil {
				return operation.Fail[[]scoringdomain.Inning](err)
			}

			league, err := s.leagues.GetLeague(ctx, db, gc.leagueID)
			if err != nil {
				if errors.Is(err, leaguedb.ErrNotFound) {
					return operation.Fail[[]scoringdomain.Inning](errs.NotFound("league", gc.leagueID.String()))
				}
				return results.OperationResult[[]scoringdomain.Inning, error]{}, fmt.Errorf("failed to load league: %w", err)
			}

			innings := scoringdomain.BlindInnings(blind, league.ToDomain().Config.Scoring.BlindDefaultRuns)
			if err := s.replaceInnings(ctx, db, gameID, innings); err != nil {
				return operation.Fail[[]scoringdomain.Inning](err)
			}

			s.logger.InfoContext(ctx, "Blind score applied",
				attr.ExtractCorrelationID(ctx),
				attr.GameID(gameID),
				attr.String("blind_side", string(blind)),
			)
			return results.SuccessResult[[]scoringdomain.Inning, error](innings), nil
		})
	})
	return operation.Unwrap(result, err)
}
