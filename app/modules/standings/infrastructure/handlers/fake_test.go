package standingshandlers

import (
	"context"

	standingsservice "github.com/Black-And-White-Club/darts-league/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/google/uuid"
)

type FakeStandingsService struct {
	calls []string

	GetStandingsFunc     func(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) (standingsservice.StandingsView, error)
	ExportStandingsFunc  func(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) ([]byte, error)
	GetLeaderboardsFunc  func(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID) (standingsservice.LeaderboardsView, error)
	LeaderboardChartFunc func(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, category standingsdomain.Category) ([]byte, error)
}

func (f *FakeStandingsService) record(step string) {
	f.calls = append(f.calls, step)
}

func (f *FakeStandingsService) GetStandings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) (standingsservice.StandingsView, error) {
	f.record("GetStandings")
	if f.GetStandingsFunc != nil {
		return f.GetStandingsFunc(ctx, leagueID, seasonID, division)
	}
	return standingsservice.StandingsView{LeagueID: leagueID}, nil
}

func (f *FakeStandingsService) ExportStandings(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, division *string) ([]byte, error) {
	f.record("ExportStandings")
	if f.ExportStandingsFunc != nil {
		return f.ExportStandingsFunc(ctx, leagueID, seasonID, division)
	}
	return []byte("PK"), nil
}

func (f *FakeStandingsService) GetLeaderboards(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID) (standingsservice.LeaderboardsView, error) {
	f.record("GetLeaderboards")
	if f.GetLeaderboardsFunc != nil {
		return f.GetLeaderboardsFunc(ctx, leagueID, seasonID)
	}
	return standingsservice.LeaderboardsView{LeagueID: leagueID}, nil
}

func (f *FakeStandingsService) LeaderboardChart(ctx context.Context, leagueID uuid.UUID, seasonID *uuid.UUID, category standingsdomain.Category) ([]byte, error) {
	f.record("LeaderboardChart")
	if f.LeaderboardChartFunc != nil {
		return f.LeaderboardChartFunc(ctx, leagueID, seasonID, category)
	}
	return []byte("\x89PNG"), nil
}

func (f *FakeStandingsService) Calls() []string {
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

var _ standingsservice.Service = (*FakeStandingsService)(nil)
