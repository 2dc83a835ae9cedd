package scoringservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/darts-league/app/eventbus"
	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// ScoringService implements the Service interface.
type ScoringService struct {
	repo       scoringdb.Repository
	leagues    leaguedb.Repository
	authorizer authservice.Authorizer
	eventBus   eventbus.EventBus
	logger     *slog.Logger
	metrics    metrics.OperationMetrics
	db         *bun.DB
	obs        operation.Observer
}

// NewScoringService creates a new ScoringService.
func NewScoringService(
	repo scoringdb.Repository,
	leagues leaguedb.Repository,
	authorizer authservice.Authorizer,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ScoringService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoringService{
		repo:       repo,
		leagues:    leagues,
		authorizer: authorizer,
		eventBus:   eventBus,
		logger:     logger,
		metrics:    metrics,
		db:         db,
		obs:        operation.Observer{Service: "ScoringService", Logger: logger, Metrics: metrics, Tracer: tracer},
	}
}

// gameContext is a loaded game plus the league that owns it.
type gameContext struct {
	game     scoringdomain.Game
	leagueID uuid.UUID
}

// loadGame reads the game, optionally locking its row, and resolves the owning
// league. A missing game is an errs.NotFoundError.
func (s *ScoringService) loadGame(ctx context.Context, db bun.IDB, gameID uuid.UUID, lock bool) (gameContext, error) {
	var (
		row *scoringdb.Game
		err error
	)
	if lock {
		row, err = s.repo.LockGame(ctx, db, gameID)
	} else {
		row, err = s.repo.GetGame(ctx, db, gameID)
	}
	if err != nil {
		if errors.Is(err, scoringdb.ErrNotFound) {
			return gameContext{}, errs.NotFound("game", gameID.String())
		}
		return gameContext{}, fmt.Errorf("failed to load game: %w", err)
	}

	game, err := row.ToDomain()
	if err != nil {
		return gameContext{}, err
	}

	leagueID, err := s.leagues.GetLeagueIDForMatch(ctx, db, game.MatchID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return gameContext{}, errs.NotFound("match", game.MatchID.String())
		}
		return gameContext{}, fmt.Errorf("failed to resolve league: %w", err)
	}
	return gameContext{game: game, leagueID: leagueID}, nil
}

// ledger returns the game's canonical innings in domain form.
func (s *ScoringService) ledger(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]scoringdomain.Inning, error) {
	rows, err := s.repo.ListInnings(ctx, db, gameID)
	if err != nil {
		return nil, err
	}
	innings := make([]scoringdomain.Inning, len(rows))
	for i := range rows {
		innings[i] = rows[i].ToDomain()
	}
	return innings, nil
}

// entries returns the game's home and visitor entries; either may be nil.
func (s *ScoringService) entries(ctx context.Context, db bun.IDB, gameID uuid.UUID) (home, visitor *scoringdomain.Entry, err error) {
	rows, err := s.repo.ListEntries(ctx, db, gameID)
	if err != nil {
		return nil, nil, err
	}
	for i := range rows {
		e := rows[i].ToDomain()
		switch e.Side {
		case scoringdomain.SideHome:
			home = &e
		case scoringdomain.SideVisitor:
			visitor = &e
		}
	}
	return home, visitor, nil
}

var _ Service = (*ScoringService)(nil)
