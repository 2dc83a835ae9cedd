package scoringservice

import (
	"context"
	"errors"
	"fmt"

	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GetMatchSummary totals a match's games. It is a read-only view and never
// records a bonus winner on the match.
func (s *ScoringService) GetMatchSummary(ctx context.Context, matchID uuid.UUID) (scoringdomain.MatchSummary, error) {
	result, err := operation.Observe(ctx, s.obs, "GetMatchSummary", matchID.String(), func(ctx context.Context) (results.OperationResult[scoringdomain.MatchSummary, error], error) {
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[scoringdomain.MatchSummary, error], error) {
			leagueID, err := s.leagues.GetLeagueIDForMatch(ctx, db, matchID)
			if err != nil {
				if errors.Is(err, leaguedb.ErrNotFound) {
					return operation.Fail[scoringdomain.MatchSummary](errs.NotFound("match", matchID.String()))
				}
				return results.OperationResult[scoringdomain.MatchSummary, error]{}, fmt.Errorf("failed to resolve league: %w", err)
			}
			if err := s.authorizer.RequireLeagueMember(ctx, leagueID); err != nil {
				return operation.Fail[scoringdomain.MatchSummary](err)
			}

			games, innings, err := LoadMatchGames(ctx, s.repo, db, []uuid.UUID{matchID})
			if err != nil {
				return results.OperationResult[scoringdomain.MatchSummary, error]{}, err
			}
			summary := scoringdomain.SummarizeMatch(matchID, games, innings)
			return results.SuccessResult[scoringdomain.MatchSummary, error](summary), nil
		})
	})
	return operation.Unwrap(result, err)
}

// LoadMatchGames reads the games of the given matches in domain form together
// with their ledgers keyed by game id. Other modules use it to aggregate
// season data.
func LoadMatchGames(ctx context.Context, repo scoringdb.Repository, db bun.IDB, matchIDs []uuid.UUID) ([]scoringdomain.Game, map[uuid.UUID][]scoringdomain.Inning, error) {
	rows, err := repo.ListGamesByMatches(ctx, db, matchIDs)
	if err != nil {
		return nil, nil, err
	}

	games := make([]scoringdomain.Game, 0, len(rows))
	gameIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		g, err := rows[i].ToDomain()
		if err != nil {
			return nil, nil, err
		}
		games = append(games, g)
		gameIDs = append(gameIDs, g.ID)
	}

	inningRows, err := repo.ListInningsByGames(ctx, db, gameIDs)
	if err != nil {
		return nil, nil, err
	}
	innings := make(map[uuid.UUID][]scoringdomain.Inning, len(games))
	for i := range inningRows {
		id := inningRows[i].GameID
		innings[id] = append(innings[id], inningRows[i].ToDomain())
	}
	return games, innings, nil
}
