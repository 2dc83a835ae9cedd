package standingshandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	standingsservice "github.com/Black-And-White-Club/darts-league/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(svc *FakeStandingsService, path string) *httptest.ResponseRecorder {
	h := NewStandingsHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Route("/api/leagues/{leagueID}", h.Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleGetStandings(t *testing.T) {
	leagueID := uuid.New()
	seasonID := uuid.New()
	base := "/api/leagues/" + leagueID.String() + "/standings"

	tests := []struct {
		name       string
		path       string
		svc        *FakeStandingsService
		wantStatus int
		wantBody   string
		wantCalls  []string
	}{
		{
			name: "passes season and division",
			path: base + "?season=" + seasonID.String() + "&division=East",
			svc: &FakeStandingsService{
				GetStandingsFunc: func(ctx context.Context, l uuid.UUID, s *uuid.UUID, d *string) (standingsservice.StandingsView, error) {
					if l != leagueID || s == nil || *s != seasonID || d == nil || *d != "East" {
						t.Errorf("unexpected scope: %v %v %v", l, s, d)
					}
					return standingsservice.StandingsView{LeagueID: l, SeasonID: *s, Division: d}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"rows":[]`,
			wantCalls:  []string{"GetStandings"},
		},
		{
			name:       "bad season",
			path:       base + "?season=last",
			svc:        &FakeStandingsService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid season",
		},
		{
			name:       "bad league",
			path:       "/api/leagues/nope/standings",
			svc:        &FakeStandingsService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid leagueID",
		},
		{
			name: "no active season",
			path: base,
			svc: &FakeStandingsService{
				GetStandingsFunc: func(ctx context.Context, l uuid.UUID, s *uuid.UUID, d *string) (standingsservice.StandingsView, error) {
					return standingsservice.StandingsView{}, errs.NotFound("active season", "")
				},
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "active season not found",
			wantCalls:  []string{"GetStandings"},
		},
		{
			name: "not a member",
			path: base,
			svc: &FakeStandingsService{
				GetStandingsFunc: func(ctx context.Context, l uuid.UUID, s *uuid.UUID, d *string) (standingsservice.StandingsView, error) {
					return standingsservice.StandingsView{}, errs.Unauthorized("not a member of this league")
				},
			},
			wantStatus: http.StatusForbidden,
			wantCalls:  []string{"GetStandings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.svc, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantCalls == nil {
				assert.Empty(t, tt.svc.Calls())
			} else {
				assert.Equal(t, tt.wantCalls, tt.svc.Calls())
			}
		})
	}
}

func TestHandleExportStandings(t *testing.T) {
	svc := &FakeStandingsService{}
	rec := serve(svc, "/api/leagues/"+uuid.New().String()+"/standings.xlsx")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "standings.xlsx")
	assert.Equal(t, "PK", rec.Body.String())
	assert.Equal(t, []string{"ExportStandings"}, svc.Calls())
}

func TestHandleGetLeaderboards(t *testing.T) {
	leagueID := uuid.New()
	playerID := uuid.New()
	svc := &FakeStandingsService{
		GetLeaderboardsFunc: func(ctx context.Context, l uuid.UUID, s *uuid.UUID) (standingsservice.LeaderboardsView, error) {
			assert.Nil(t, s)
			return standingsservice.LeaderboardsView{
				LeagueID: l,
				Leaderboards: standingsdomain.Leaderboards{
					MostWins: []standingsdomain.LeaderboardEntry{{Rank: 1, PlayerID: playerID, PlayerName: "Ann", Value: 7}},
				},
			}, nil
		},
	}

	rec := serve(svc, "/api/leagues/"+leagueID.String()+"/leaderboards")
	require.Equal(t, http.StatusOK, rec.Code)

	var body standingsservice.LeaderboardsView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, leagueID, body.LeagueID)
	require.Len(t, body.Leaderboards.MostWins, 1)
	assert.Equal(t, "Ann", body.Leaderboards.MostWins[0].PlayerName)
	assert.Equal(t, 7.0, body.Leaderboards.MostWins[0].Value)
}

func TestHandleLeaderboardChart(t *testing.T) {
	leagueID := uuid.New()

	t.Run("renders category", func(t *testing.T) {
		svc := &FakeStandingsService{
			LeaderboardChartFunc: func(ctx context.Context, l uuid.UUID, s *uuid.UUID, c standingsdomain.Category) ([]byte, error) {
				assert.Equal(t, standingsdomain.CategoryMostRuns, c)
				return []byte("\x89PNG"), nil
			},
		}
		rec := serve(svc, "/api/leagues/"+leagueID.String()+"/leaderboards/most_runs/chart.png")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, []string{"LeaderboardChart"}, svc.Calls())
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := &FakeStandingsService{}
		rec := serve(svc, "/api/leagues/"+leagueID.String()+"/leaderboards/most_darts/chart.png")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown leaderboard category")
		assert.Empty(t, svc.Calls())
	})
}
