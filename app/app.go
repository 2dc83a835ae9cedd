package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/darts-league/app/eventbus"
	"github.com/Black-And-White-Club/darts-league/app/modules/auth"
	"github.com/Black-And-White-Club/darts-league/app/modules/handicap"
	"github.com/Black-And-White-Club/darts-league/app/modules/league"
	"github.com/Black-And-White-Club/darts-league/app/modules/scoring"
	"github.com/Black-And-White-Club/darts-league/app/modules/standings"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// App holds the shared infrastructure and every module.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Modules       *Modules
	Router        chi.Router
	logger        *slog.Logger
}

// Modules holds the application modules.
type Modules struct {
	Auth      *auth.Module
	League    *league.Module
	Scoring   *scoring.Module
	Standings *standings.Module
	Handicap  *handicap.Module
}

// NewApp connects to Postgres and the event bus and wires the modules.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(cfg.Observability)
	logger := obs.Provider.Logger

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	bus, err := eventbus.NewEventBus(cfg.NATS.URL, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}

	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
		logger:        logger,
	}
	if err := app.initializeModules(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Router = NewRouter(cfg, obs, app.Modules)
	return app, nil
}

func (app *App) initializeModules(ctx context.Context) error {
	authModule, err := auth.NewModule(ctx, app.Config, app.Observability)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}
	authorizer := authModule.GetAuthorizer()

	leagueModule, err := league.NewModule(ctx, app.Observability, authorizer, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize league module: %w", err)
	}

	scoringModule, err := scoring.NewModule(ctx, app.Observability, authorizer, leagueModule.GetRepository(), app.EventBus, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize scoring module: %w", err)
	}

	standingsModule, err := standings.NewModule(ctx, app.Observability, authorizer, leagueModule.GetRepository(), scoringModule.GetRepository(), app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize standings module: %w", err)
	}

	handicapModule, err := handicap.NewModule(
		ctx,
		app.Observability,
		authorizer,
		leagueModule.GetRepository(),
		scoringModule.GetRepository(),
		standingsModule.GetAverageSource(),
		app.DB,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize handicap module: %w", err)
	}

	app.Modules = &Modules{
		Auth:      authModule,
		League:    leagueModule,
		Scoring:   scoringModule,
		Standings: standingsModule,
		Handicap:  handicapModule,
	}
	app.logger.InfoContext(ctx, "Modules initialized")
	return nil
}

// Close releases the event bus and the database.
func (app *App) Close() error {
	var firstErr error
	if app.Modules != nil && app.Modules.Auth != nil {
		if err := app.Modules.Auth.Close(); err != nil {
			firstErr = err
		}
	}
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			app.logger.Error("Failed to close event bus", attr.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.logger.Error("Failed to close database", attr.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
