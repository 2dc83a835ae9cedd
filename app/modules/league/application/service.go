package leagueservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// LeagueService implements the Service interface.
type LeagueService struct {
	repo       leaguedb.Repository
	authorizer authservice.Authorizer
	logger     *slog.Logger
	db         *bun.DB
	obs        operation.Observer
}

// NewLeagueService creates a new LeagueService.
func NewLeagueService(
	repo leaguedb.Repository,
	authorizer authservice.Authorizer,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *LeagueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeagueService{
		repo:       repo,
		authorizer: authorizer,
		logger:     logger,
		db:         db,
		obs:        operation.Observer{Service: "LeagueService", Logger: logger, Metrics: metrics, Tracer: tracer},
	}
}

// GetLeagueConfig returns the league's configuration.
func (s *LeagueService) GetLeagueConfig(ctx context.Context, leagueID uuid.UUID) (leaguedomain.Config, error) {
	result, err := operation.Observe(ctx, s.obs, "GetLeagueConfig", leagueID.String(), func(ctx context.Context) (results.OperationResult[leaguedomain.Config, error], error) {
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[leaguedomain.Config, error], error) {
			if err := s.authorizer.RequireLeagueMember(ctx, leagueID); err != nil {
				return results.FailureResult[leaguedomain.Config, error](err), nil
			}
			return s.loadConfig(ctx, db, leagueID)
		})
	})
	return operation.Unwrap(result, err)
}

// UpdateHandicapSettings validates and stores the league's handicap policy.
func (s *LeagueService) UpdateHandicapSettings(ctx context.Context, leagueID uuid.UUID, settings leaguedomain.HandicapSettings) (leaguedomain.Config, error) {
	result, err := operation.Observe(ctx, s.obs, "UpdateHandicapSettings", leagueID.String(), func(ctx context.Context) (results.OperationResult[leaguedomain.Config, error], error) {
		if err := settings.Validate(); err != nil {
			return results.FailureResult[leaguedomain.Config, error](err), nil
		}
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[leaguedomain.Config, error], error) {
			if err := s.authorizer.RequireRole(ctx, leagueID, authdomain.RoleAdmin); err != nil {
				return results.FailureResult[leaguedomain.Config, error](err), nil
			}
			err := s.repo.UpdateHandicapSettings(ctx, db, leagueID, settings.Enabled, settings.DefaultPercent, string(settings.RecalcCadence))
			if err != nil {
				if errors.Is(err, leaguedb.ErrNotFound) {
					return results.FailureResult[leaguedomain.Config, error](errs.NotFound("league", leagueID.String())), nil
				}
				return results.OperationResult[leaguedomain.Config, error]{}, err
			}
			return s.loadConfig(ctx, db, leagueID)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *LeagueService) loadConfig(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (results.OperationResult[leaguedomain.Config, error], error) {
	league, err := s.repo.GetLeague(ctx, db, leagueID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return results.FailureResult[leaguedomain.Config, error](errs.NotFound("league", leagueID.String())), nil
		}
		return results.OperationResult[leaguedomain.Config, error]{}, fmt.Errorf("failed to load league: %w", err)
	}
	return results.SuccessResult[leaguedomain.Config, error](league.ToDomain().Config), nil
}

var _ Service = (*LeagueService)(nil)
