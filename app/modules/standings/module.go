package standings

import (
	"context"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	standingsservice "github.com/Black-And-White-Club/darts-league/app/modules/standings/application"
	standingshandlers "github.com/Black-And-White-Club/darts-league/app/modules/standings/infrastructure/handlers"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the standings and leaderboards module.
type Module struct {
	service  *standingsservice.StandingsService
	handlers *standingshandlers.StandingsHandlers
}

// NewModule creates a new standings module.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	authorizer authservice.Authorizer,
	leagues leaguedb.Repository,
	games scoringdb.Repository,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "Initializing standings module")

	service := standingsservice.NewStandingsService(leagues, games, authorizer, logger, obs.Registry.Metrics, obs.Registry.Tracer, db)

	return &Module{
		service:  service,
		handlers: standingshandlers.NewStandingsHandlers(service, logger),
	}, nil
}

// LeagueRoutes mounts the handlers under /api/leagues/{leagueID}.
func (m *Module) LeagueRoutes(r chi.Router) {
	m.handlers.Routes(r)
}

// GetService returns the standings service.
func (m *Module) GetService() standingsservice.Service {
	return m.service
}

// GetAverageSource exposes season averages to the handicap module.
func (m *Module) GetAverageSource() standingsservice.AverageSource {
	return m.service
}
