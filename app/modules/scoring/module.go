package scoring

import (
	"context"

	"github.com/Black-And-White-Club/darts-league/app/eventbus"
	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringservice "github.com/Black-And-White-Club/darts-league/app/modules/scoring/application"
	scoringhandlers "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/handlers"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the scoring module: ledgers, reconciliation and winners.
type Module struct {
	repo     scoringdb.Repository
	service  scoringservice.Service
	handlers *scoringhandlers.ScoringHandlers
}

// NewModule creates a new scoring module.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	authorizer authservice.Authorizer,
	leagues leaguedb.Repository,
	eventBus eventbus.EventBus,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "Initializing scoring module")

	repo := scoringdb.NewRepository(db)
	service := scoringservice.NewScoringService(
		repo,
		leagues,
		authorizer,
		eventBus,
		logger,
		obs.Registry.Metrics,
		obs.Registry.Tracer,
		db,
	)

	return &Module{
		repo:     repo,
		service:  service,
		handlers: scoringhandlers.NewScoringHandlers(service, logger),
	}, nil
}

// GameRoutes mounts the game handlers under /api/games/{gameID}.
func (m *Module) GameRoutes(r chi.Router) {
	m.handlers.GameRoutes(r)
}

// MatchRoutes mounts the match handlers under /api/matches/{matchID}.
func (m *Module) MatchRoutes(r chi.Router) {
	m.handlers.MatchRoutes(r)
}

// GetRepository returns the game repository for read-side modules.
func (m *Module) GetRepository() scoringdb.Repository {
	return m.repo
}

// GetService returns the scoring service.
func (m *Module) GetService() scoringservice.Service {
	return m.service
}
