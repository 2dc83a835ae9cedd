package standingshandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	standingsservice "github.com/Black-And-White-Club/darts-league/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StandingsHandlers serves standings and leaderboards over HTTP.
type StandingsHandlers struct {
	service standingsservice.Service
	logger  *slog.Logger
}

// NewStandingsHandlers creates a new StandingsHandlers instance.
func NewStandingsHandlers(service standingsservice.Service, logger *slog.Logger) *StandingsHandlers {
	return &StandingsHandlers{service: service, logger: logger}
}

// Routes mounts the handlers under /api/leagues/{leagueID}.
func (h *StandingsHandlers) Routes(r chi.Router) {
	r.Get("/standings", h.HandleGetStandings)
	r.Get("/standings.xlsx", h.HandleExportStandings)
	r.Get("/leaderboards", h.HandleGetLeaderboards)
	r.Get("/leaderboards/{category}/chart.png", h.HandleLeaderboardChart)
}

// scope reads the league path parameter and the optional season query.
func scope(r *http.Request) (uuid.UUID, *uuid.UUID, error) {
	leagueID, err := httpx.URLParamUUID(r, "leagueID")
	if err != nil {
		return uuid.Nil, nil, err
	}
	seasonID, err := httpx.QueryUUID(r, "season")
	if err != nil {
		return uuid.Nil, nil, err
	}
	return leagueID, seasonID, nil
}

// HandleGetStandings handles GET /api/leagues/{leagueID}/standings?season=&division=.
func (h *StandingsHandlers) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, seasonID, err := scope(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	view, err := h.service.GetStandings(r.Context(), leagueID, seasonID, httpx.QueryString(r, "division"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if view.Rows == nil {
		view.Rows = []standingsdomain.StandingRow{}
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleExportStandings handles GET /api/leagues/{leagueID}/standings.xlsx.
func (h *StandingsHandlers) HandleExportStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, seasonID, err := scope(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	data, err := h.service.ExportStandings(r.Context(), leagueID, seasonID, httpx.QueryString(r, "division"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="standings.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleGetLeaderboards handles GET /api/leagues/{leagueID}/leaderboards?season=.
func (h *StandingsHandlers) HandleGetLeaderboards(w http.ResponseWriter, r *http.Request) {
	leagueID, seasonID, err := scope(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	view, err := h.service.GetLeaderboards(r.Context(), leagueID, seasonID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleLeaderboardChart handles GET /api/leagues/{leagueID}/leaderboards/{category}/chart.png.
func (h *StandingsHandlers) HandleLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	leagueID, seasonID, err := scope(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	category, err := standingsdomain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	png, err := h.service.LeaderboardChart(r.Context(), leagueID, seasonID, category)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
