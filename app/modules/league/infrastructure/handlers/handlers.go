package leaguehandlers

import (
	"log/slog"
	"net/http"

	leagueservice "github.com/Black-And-White-Club/darts-league/app/modules/league/application"
	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// LeagueHandlers serves league configuration over HTTP.
type LeagueHandlers struct {
	service leagueservice.Service
	logger  *slog.Logger
}

// NewLeagueHandlers creates a new LeagueHandlers instance.
func NewLeagueHandlers(service leagueservice.Service, logger *slog.Logger) *LeagueHandlers {
	return &LeagueHandlers{service: service, logger: logger}
}

// Routes mounts the handlers under /api/leagues/{leagueID}.
func (h *LeagueHandlers) Routes(r chi.Router) {
	r.Get("/config", h.HandleGetConfig)
	r.Put("/handicap", h.HandleUpdateHandicap)
}

// HandleGetConfig handles GET /api/leagues/{leagueID}/config.
func (h *LeagueHandlers) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpx.URLParamUUID(r, "leagueID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	cfg, err := h.service.GetLeagueConfig(r.Context(), leagueID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cfg)
}

// HandleUpdateHandicap handles PUT /api/leagues/{leagueID}/handicap.
func (h *LeagueHandlers) HandleUpdateHandicap(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpx.URLParamUUID(r, "leagueID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var body leaguedomain.HandicapSettings
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	cfg, err := h.service.UpdateHandicapSettings(r.Context(), leagueID, body)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cfg)
}
