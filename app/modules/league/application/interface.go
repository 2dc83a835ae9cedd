package leagueservice

import (
	"context"

	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	"github.com/google/uuid"
)

// Service exposes league configuration to callers.
type Service interface {
	// GetLeagueConfig returns the league's configuration (league member).
	GetLeagueConfig(ctx context.Context, leagueID uuid.UUID) (leaguedomain.Config, error)

	// UpdateHandicapSettings replaces the league's handicap policy (league admin).
	UpdateHandicapSettings(ctx context.Context, leagueID uuid.UUID, settings leaguedomain.HandicapSettings) (leaguedomain.Config, error)
}
