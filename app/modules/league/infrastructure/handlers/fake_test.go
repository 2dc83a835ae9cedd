package leaguehandlers

import (
	"context"

	leagueservice "github.com/Black-And-White-Club/darts-league/app/modules/league/application"
	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	"github.com/google/uuid"
)

type FakeLeagueService struct {
	GetLeagueConfigFunc        func(ctx context.Context, leagueID uuid.UUID) (leaguedomain.Config, error)
	UpdateHandicapSettingsFunc func(ctx context.Context, leagueID uuid.UUID, settings leaguedomain.HandicapSettings) (leaguedomain.Config, error)
}

func (f *FakeLeagueService) GetLeagueConfig(ctx context.Context, leagueID uuid.UUID) (leaguedomain.Config, error) {
	if f.GetLeagueConfigFunc != nil {
		return f.GetLeagueConfigFunc(ctx, leagueID)
	}
	return leaguedomain.DefaultConfig(), nil
}

func (f *FakeLeagueService) UpdateHandicapSettings(ctx context.Context, leagueID uuid.UUID, settings leaguedomain.HandicapSettings) (leaguedomain.Config, error) {
	if f.UpdateHandicapSettingsFunc != nil {
		return f.UpdateHandicapSettingsFunc(ctx, leagueID, settings)
	}
	return leaguedomain.DefaultConfig().WithHandicap(settings), nil
}

var _ leagueservice.Service = (*FakeLeagueService)(nil)
