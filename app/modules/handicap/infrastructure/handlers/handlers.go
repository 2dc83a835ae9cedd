package handicaphandlers

import (
	"log/slog"
	"net/http"

	handicapservice "github.com/Black-And-White-Club/darts-league/app/modules/handicap/application"
	"github.com/Black-And-White-Club/darts-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// HandicapHandlers serves handicap views over HTTP.
type HandicapHandlers struct {
	service handicapservice.Service
	logger  *slog.Logger
}

// NewHandicapHandlers creates a new HandicapHandlers instance.
func NewHandicapHandlers(service handicapservice.Service, logger *slog.Logger) *HandicapHandlers {
	return &HandicapHandlers{service: service, logger: logger}
}

// MatchRoutes mounts the handlers under /api/matches/{matchID}.
func (h *HandicapHandlers) MatchRoutes(r chi.Router) {
	r.Get("/handicaps", h.HandleGetMatchHandicaps)
}

// HandleGetMatchHandicaps handles GET /api/matches/{matchID}/handicaps.
func (h *HandicapHandlers) HandleGetMatchHandicaps(w http.ResponseWriter, r *http.Request) {
	matchID, err := httpx.URLParamUUID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	view, err := h.service.GetMatchHandicaps(r.Context(), matchID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if view.Games == nil {
		view.Games = []handicapservice.GameHandicap{}
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}
