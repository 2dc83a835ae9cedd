package leagueservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Black-And-White-Club/darts-league/app/modules/auth/application/mocks"
	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

func newTestService(repo leaguedb.Repository, authz *mocks.MockAuthorizer) *LeagueService {
	return NewLeagueService(
		repo,
		authz,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
}

func TestGetLeagueConfig(t *testing.T) {
	leagueID := uuid.New()
	row := leaguedb.LeagueFromDomain(leaguedomain.League{ID: leagueID, Name: "Tuesday Darts", Config: leaguedomain.DefaultConfig()})

	tests := []struct {
		name      string
		setup     func(*FakeLeagueRepo, *mocks.MockAuthorizer)
		want      leaguedomain.Config
		checkErr  func(error) bool
		wantTrace []string
	}{
		{
			name: "member reads config",
			setup: func(f *FakeLeagueRepo, a *mocks.MockAuthorizer) {
				a.EXPECT().RequireLeagueMember(gomock.Any(), leagueID).Return(nil)
				f.GetLeagueFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*leaguedb.League, error) {
					return row, nil
				}
			},
			want:      leaguedomain.DefaultConfig(),
			wantTrace: []string{"GetLeague"},
		},
		{
			name: "non-member rejected before any read",
			setup: func(f *FakeLeagueRepo, a *mocks.MockAuthorizer) {
				a.EXPECT().RequireLeagueMember(gomock.Any(), leagueID).Return(errs.Unauthorized("Not a member of this league"))
			},
			checkErr:  errs.IsAuthorization,
			wantTrace: []string{},
		},
		{
			name: "missing league",
			setup: func(f *FakeLeagueRepo, a *mocks.MockAuthorizer) {
				a.EXPECT().RequireLeagueMember(gomock.Any(), leagueID).Return(nil)
			},
			checkErr:  errs.IsNotFound,
			wantTrace: []string{"GetLeague"},
		},
		{
			name: "database error",
			setup: func(f *FakeLeagueRepo, a *mocks.MockAuthorizer) {
				a.EXPECT().RequireLeagueMember(gomock.Any(), leagueID).Return(nil)
				f.GetLeagueFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*leaguedb.League, error) {
					return nil, errors.New("connection reset")
				}
			},
			checkErr:  func(err error) bool { return err != nil && !errs.IsDomain(err) },
			wantTrace: []string{"GetLeague"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewFakeLeagueRepo()
			authz := mocks.NewMockAuthorizer(ctrl)
			tt.setup(repo, authz)

			got, err := newTestService(repo, authz).GetLeagueConfig(context.Background(), leagueID)
			if tt.checkErr != nil {
				require.Error(t, err)
				assert.True(t, tt.checkErr(err), "unexpected error %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantTrace, repo.Trace())
		})
	}
}

func TestUpdateHandicapSettings(t *testing.T) {
	leagueID := uuid.New()
	settings := leaguedomain.HandicapSettings{Enabled: true, DefaultPercent: 80, RecalcCadence: leaguedomain.CadencePerMatch}

	t.Run("admin updates settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authz := mocks.NewMockAuthorizer(ctrl)
		authz.EXPECT().RequireRole(gomock.Any(), leagueID, authdomain.RoleAdmin).Return(nil)

		stored := leaguedb.LeagueFromDomain(leaguedomain.League{ID: leagueID, Config: leaguedomain.DefaultConfig()})
		repo := NewFakeLeagueRepo()
		repo.UpdateHandicapSettingsFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID, enabled bool, percent int, cadence string) error {
			stored.HandicapEnabled, stored.HandicapPercent, stored.HandicapCadence = enabled, percent, cadence
			return nil
		}
		repo.GetLeagueFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*leaguedb.League, error) {
			return stored, nil
		}

		cfg, err := newTestService(repo, authz).UpdateHandicapSettings(context.Background(), leagueID, settings)
		require.NoError(t, err)
		assert.Equal(t, settings, cfg.Handicap)
		assert.Equal(t, []string{"UpdateHandicapSettings", "GetLeague"}, repo.Trace())
	})

	t.Run("invalid settings rejected before authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authz := mocks.NewMockAuthorizer(ctrl)
		repo := NewFakeLeagueRepo()

		bad := settings
		bad.DefaultPercent = 150
		_, err := newTestService(repo, authz).UpdateHandicapSettings(context.Background(), leagueID, bad)
		assert.EqualError(t, err, "Handicap percent must be between 0 and 100")
		assert.Empty(t, repo.Trace())
	})

	t.Run("captain cannot update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authz := mocks.NewMockAuthorizer(ctrl)
		authz.EXPECT().RequireRole(gomock.Any(), leagueID, authdomain.RoleAdmin).Return(errs.Unauthorized("Not authorized: requires admin role"))
		repo := NewFakeLeagueRepo()

		_, err := newTestService(repo, authz).UpdateHandicapSettings(context.Background(), leagueID, settings)
		assert.True(t, errs.IsAuthorization(err))
		assert.Empty(t, repo.Trace())
	})

	t.Run("unknown league", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authz := mocks.NewMockAuthorizer(ctrl)
		authz.EXPECT().RequireRole(gomock.Any(), leagueID, authdomain.RoleAdmin).Return(nil)
		repo := NewFakeLeagueRepo()
		repo.UpdateHandicapSettingsFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID, enabled bool, percent int, cadence string) error {
			return leaguedb.ErrNotFound
		}

		_, err := newTestService(repo, authz).UpdateHandicapSettings(context.Background(), leagueID, settings)
		assert.True(t, errs.IsNotFound(err))
	})
}
