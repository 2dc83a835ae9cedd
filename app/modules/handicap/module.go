package handicap

import (
	"context"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	handicapservice "github.com/Black-And-White-Club/darts-league/app/modules/handicap/application"
	handicaphandlers "github.com/Black-And-White-Club/darts-league/app/modules/handicap/infrastructure/handlers"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the handicap module.
type Module struct {
	service  handicapservice.Service
	handlers *handicaphandlers.HandicapHandlers
}

// NewModule creates a new handicap module.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	authorizer authservice.Authorizer,
	leagues leaguedb.Repository,
	games scoringdb.Repository,
	averages handicapservice.AverageSource,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "Initializing handicap module")

	service := handicapservice.NewHandicapService(leagues, games, averages, authorizer, logger, obs.Registry.Metrics, obs.Registry.Tracer, db)

	return &Module{
		service:  service,
		handlers: handicaphandlers.NewHandicapHandlers(service, logger),
	}, nil
}

// MatchRoutes mounts the handlers under /api/matches/{matchID}.
func (m *Module) MatchRoutes(r chi.Router) {
	m.handlers.MatchRoutes(r)
}

// GetService returns the handicap service.
func (m *Module) GetService() handicapservice.Service {
	return m.service
}
