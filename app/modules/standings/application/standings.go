package standingsservice

import (
	"context"
	"fmt"

	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GetStandings ranks the teams of a season.
func (s *StandingsService) GetStandings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) (StandingsView, error) {
	result, err := operation.Observe(ctx, s.obs, "GetStandings", leagueID.String(), func(ctx context.Context) (results.OperationResult[StandingsView, error], error) {
		return s.standings(ctx, leagueID, seasonID, division)
	})
	return operation.Unwrap(result, err)
}

// ExportStandings renders a season's standings as an XLSX workbook.
func (s *StandingsService) ExportStandings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) ([]byte, error) {
	result, err := operation.Observe(ctx, s.obs, "ExportStandings", leagueID.String(), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		res, err := s.standings(ctx, leagueID, seasonID, division)
		view, err := operation.Unwrap(res, err)
		if err != nil {
			return operation.Fail[[]byte](err)
		}
		data, err := BuildStandingsWorkbook(view)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to build workbook: %w", err)
		}
		s.logger.InfoContext(ctx, "Standings exported",
			attr.ExtractCorrelationID(ctx),
			attr.LeagueID(leagueID),
			attr.Int("rows", len(view.Rows)),
			attr.Int("bytes", len(data)),
		)
		return results.SuccessResult[[]byte, error](data), nil
	})
	return operation.Unwrap(result, err)
}

func (s *StandingsService) standings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) (results.OperationResult[StandingsView, error], error) {
	return operation.InTx(ctx, s.db, operation.ReadOnly, func(ctx context.Context, db bun.IDB) (results.OperationResult[StandingsView, error], error) {
		if err := s.authorizer.RequireLeagueMember(ctx, leagueID); err != nil {
			return operation.Fail[StandingsView](err)
		}
		sc, err := s.loadSeason(ctx, db, leagueID, seasonID)
		if err != nil {
			return operation.Fail[StandingsView](err)
		}
		rows := standingsdomain.ComputeStandings(sc.data, sc.config, division)
		return results.SuccessResult[StandingsView, error](StandingsView{
			LeagueID:   leagueID,
			SeasonID:   sc.season.ID,
			SeasonName: sc.season.Name,
			Division:   division,
			Rows:       rows,
		}), nil
	})
}
