package scoringservice

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/darts-league/app/eventbus"
	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListInnings returns the game's canonical ledger, inning ascending, home first.
func (s *ScoringService) ListInnings(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error) {
	result, err := operation.Observe(ctx, s.obs, "ListInnings", gameID.String(), func(ctx context.Context) (results.OperationResult[[]scoringdomain.Inning, error], error) {
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]scoringdomain.Inning, error], error) {
			gc, err := s.loadGame(ctx, db, gameID, false)
			if err != nil {
				return operation.Fail[[]scoringdomain.Inning](err)
			}
			if err := s.authorizer.RequireLeagueMember(ctx, gc.leagueID); err != nil {
				return operation.Fail[[]scoringdomain.Inning](err)
			}
			innings, err := s.ledger(ctx, db, gameID)
			if err != nil {
				return results.OperationResult[[]scoringdomain.Inning, error]{}, err
			}
			return results.SuccessResult[[]scoringdomain.Inning, error](innings), nil
		})
	})
	return operation.Unwrap(result, err)
}

// DetermineWinner recomputes the game's winner from its full ledger. DNP games
// are left without a winner and an empty ledger leaves the stored winner as is.
func (s *ScoringService) DetermineWinner(ctx context.Context, gameID uuid.UUID) (GameResult, error) {
	var events []pendingEvent
	result, err := operation.Observe(ctx, s.obs, "DetermineWinner", gameID.String(), func(ctx context.Context) (results.OperationResult[GameResult, error], error) {
		res, err := operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[GameResult, error], error) {
			events = nil
			gc, err := s.loadGame(ctx, db, gameID, true)
			if err != nil {
				return operation.Fail[GameResult](err)
			}
			if err := s.authorizer.RequireRole(ctx, gc.leagueID, authdomain.RoleCaptain, authdomain.RoleAdmin); err != nil {
				return operation.Fail[GameResult](err)
			}
			gr, ev, err := s.determineWinner(ctx, db, gc.game)
			if err != nil {
				return results.OperationResult[GameResult, error]{}, err
			}
			events = append(events, ev...)
			return results.SuccessResult[GameResult, error](gr), nil
		})
		if err == nil && res.IsSuccess() {
			s.publish(ctx, events)
		}
		return res, err
	})
	return operation.Unwrap(result, err)
}

// determineWinner resolves the winner of a loaded game from its ledger and
// stores it when it changed. It never fails on domain grounds.
func (s *ScoringService) determineWinner(ctx context.Context, db bun.IDB, game scoringdomain.Game) (GameResult, []pendingEvent, error) {
	innings, err := s.ledger(ctx, db, game.ID)
	if err != nil {
		return GameResult{}, nil, err
	}
	home, visitor := scoringdomain.Totals(innings)
	gr := GameResult{GameID: game.ID, Winner: game.Winner, HomeTotal: home, VisitorTotal: visitor, IsDNP: game.IsDNP}

	if game.IsDNP {
		gr.Winner = scoringdomain.WinnerUndetermined
		return gr, nil, nil
	}

	winner := scoringdomain.ResolveWinner(innings)
	if !winner.Recorded() || winner == game.Winner {
		return gr, nil, nil
	}

	stored := string(winner)
	if err := s.repo.SetWinner(ctx, db, game.ID, &stored); err != nil {
		return GameResult{}, nil, fmt.Errorf("failed to store winner: %w", err)
	}
	s.logger.InfoContext(ctx, "Game winner updated",
		attr.ExtractCorrelationID(ctx),
		attr.GameID(game.ID),
		attr.String("winner", stored),
		attr.Int("home_total", home),
		attr.Int("visitor_total", visitor),
	)

	gr.Winner = winner
	return gr, []pendingEvent{{
		topic:   eventbus.TopicGameWinner,
		payload: GameWinnerPayload{GameID: game.ID, MatchID: game.MatchID, Winner: winner},
	}}, nil
}

// replaceInnings validates and writes a full ledger. Validation errors are
// returned before anything is deleted.
func (s *ScoringService) replaceInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID, innings []scoringdomain.Inning) error {
	if err := scoringdomain.ValidateInnings(innings); err != nil {
		return err
	}
	if err := s.repo.ReplaceInnings(ctx, db, gameID, scoringdomain.NormalizeInnings(innings)); err != nil {
		return fmt.Errorf("failed to replace innings: %w", err)
	}
	return nil
}
