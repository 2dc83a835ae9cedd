package league

import (
	"context"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	leagueservice "github.com/Black-And-White-Club/darts-league/app/modules/league/application"
	leaguehandlers "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/handlers"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the league directory module.
type Module struct {
	repo     leaguedb.Repository
	service  leagueservice.Service
	handlers *leaguehandlers.LeagueHandlers
}

// NewModule creates a new league module.
func NewModule(ctx context.Context, obs observability.Observability, authorizer authservice.Authorizer, db *bun.DB) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "Initializing league module")

	repo := leaguedb.NewRepository(db)
	service := leagueservice.NewLeagueService(repo, authorizer, logger, obs.Registry.Metrics, obs.Registry.Tracer, db)

	return &Module{
		repo:     repo,
		service:  service,
		handlers: leaguehandlers.NewLeagueHandlers(service, logger),
	}, nil
}

// LeagueRoutes mounts the league handlers under /api/leagues/{leagueID}.
func (m *Module) LeagueRoutes(r chi.Router) {
	m.handlers.Routes(r)
}

// GetRepository returns the league repository for modules that read the directory.
func (m *Module) GetRepository() leaguedb.Repository {
	return m.repo
}

// GetService returns the league service.
func (m *Module) GetService() leagueservice.Service {
	return m.service
}
