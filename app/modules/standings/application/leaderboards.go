package standingsservice

import (
	"context"
	"fmt"

	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GetLeaderboards returns the season's five leaderboards.
func (s *StandingsService) GetLeaderboards(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID) (LeaderboardsView, error) {
	result, err := operation.Observe(ctx, s.obs, "GetLeaderboards", leagueID.String(), func(ctx context.Context) (results.OperationResult[LeaderboardsView, error], error) {
		return s.leaderboards(ctx, leagueID, seasonID)
	})
	return operation.Unwrap(result, err)
}

// LeaderboardChart renders one leaderboard category as a PNG bar chart.
func (s *StandingsService) LeaderboardChart(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, category standingsdomain.Category) ([]byte, error) {
	result, err := operation.Observe(ctx, s.obs, "LeaderboardChart", leagueID.String(), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		if _, err := standingsdomain.ParseCategory(string(category)); err != nil {
			return operation.Fail[[]byte](err)
		}
		res, err := s.leaderboards(ctx, leagueID, seasonID)
		view, err := operation.Unwrap(res, err)
		if err != nil {
			return operation.Fail[[]byte](err)
		}
		title := fmt.Sprintf("%s: %s", view.SeasonName, category.Title())
		png, err := RenderLeaderboardChart(title, view.Leaderboards.ByCategory(category), s.palette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to render chart: %w", err)
		}
		return results.SuccessResult[[]byte, error](png), nil
	})
	return operation.Unwrap(result, err)
}

// PlayerAverages returns the un-rounded season average of every player with
// at least one counted game. It does not authorize; callers already have.
func (s *StandingsService) PlayerAverages(ctx context.Context, leagueID uuid.UUID, seasonID uuid.UUID) (map[uuid.UUID]float64, error) {
	result, err := operation.Observe(ctx, s.obs, "PlayerAverages", seasonID.String(), func(ctx context.Context) (results.OperationResult[map[uuid.UUID]float64, error], error) {
		return operation.InTx(ctx, s.db, operation.ReadOnly, func(ctx context.Context, db bun.IDB) (results.OperationResult[map[uuid.UUID]float64, error], error) {
			sc, err := s.loadSeason(ctx, db, leagueID, &seasonID)
			if err != nil {
				return operation.Fail[map[uuid.UUID]float64](err)
			}
			stats := standingsdomain.BuildPlayerSeasonStats(sc.data.Games, sc.data.Innings, sc.data.Players, sc.data.Teams)
			return results.SuccessResult[map[uuid.UUID]float64, error](standingsdomain.Averages(stats)), nil
		})
	})
	return operation.Unwrap(result, err)
}

func (s *StandingsService) leaderboards(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID) (results.OperationResult[LeaderboardsView, error], error) {
	return operation.InTx(ctx, s.db, operation.ReadOnly, func(ctx context.Context, db bun.IDB) (results.OperationResult[LeaderboardsView, error], error) {
		if err := s.authorizer.RequireLeagueMember(ctx, leagueID); err != nil {
			return operation.Fail[LeaderboardsView](err)
		}
		sc, err := s.loadSeason(ctx, db, leagueID, seasonID)
		if err != nil {
			return operation.Fail[LeaderboardsView](err)
		}
		stats := standingsdomain.BuildPlayerSeasonStats(sc.data.Games, sc.data.Innings, sc.data.Players, sc.data.Teams)
		return results.SuccessResult[LeaderboardsView, error](LeaderboardsView{
			LeagueID:     leagueID,
			SeasonID:     sc.season.ID,
			SeasonName:   sc.season.Name,
			Leaderboards: standingsdomain.ComputeLeaderboards(stats),
		}), nil
	})
}
