package scoringhandlers

import (
	"log/slog"
	"net/http"

	scoringservice "github.com/Black-And-White-Club/darts-league/app/modules/scoring/application"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/Black-And-White-Club/darts-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// ScoringHandlers serves game scoring over HTTP.
type ScoringHandlers struct {
	service scoringservice.Service
	logger  *slog.Logger
}

// NewScoringHandlers creates a new ScoringHandlers instance.
func NewScoringHandlers(service scoringservice.Service, logger *slog.Logger) *ScoringHandlers {
	return &ScoringHandlers{service: service, logger: logger}
}

// GameRoutes mounts the handlers under /api/games/{gameID}.
func (h *ScoringHandlers) GameRoutes(r chi.Router) {
	r.Get("/innings", h.HandleListInnings)
	r.Get("/entries", h.HandleGetReconciliation)
	r.Post("/entries", h.HandleSubmitEntry)
	r.Post("/resolve", h.HandleResolve)
	r.Post("/dnp", h.HandleSetDNP)
	r.Post("/blind", h.HandleApplyBlind)
	r.Post("/winner", h.HandleDetermineWinner)
}

// MatchRoutes mounts the handlers under /api/matches/{matchID}.
func (h *ScoringHandlers) MatchRoutes(r chi.Router) {
	r.Get("/summary", h.HandleMatchSummary)
}

type submitEntryRequest struct {
	Side    string                 `json:"side"`
	Innings []scoringdomain.Inning `json:"innings"`
}

type setDNPRequest struct {
	IsDNP *bool `json:"isDnp"`
}

// HandleListInnings handles GET /api/games/{gameID}/innings.
func (h *ScoringHandlers) HandleListInnings(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	innings, err := h.service.ListInnings(r.Context(), gameID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if innings == nil {
		innings = []scoringdomain.Inning{}
	}
	httpx.WriteJSON(w, http.StatusOK, innings)
}

// HandleGetReconciliation handles GET /api/games/{gameID}/entries.
func (h *ScoringHandlers) HandleGetReconciliation(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	view, err := h.service.GetReconciliation(r.Context(), gameID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleSubmitEntry handles POST /api/games/{gameID}/entries.
func (h *ScoringHandlers) HandleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var body submitEntryRequest
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	side, err := scoringdomain.ParseSide(body.Side)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	view, err := h.service.SubmitScoreEntry(r.Context(), gameID, side, body.Innings)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleResolve handles POST /api/games/{gameID}/resolve.
func (h *ScoringHandlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var body scoringdomain.Resolution
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	view, err := h.service.ResolveDiscrepancy(r.Context(), gameID, body)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleSetDNP handles POST /api/games/{gameID}/dnp.
func (h *ScoringHandlers) HandleSetDNP(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var body setDNPRequest
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if body.IsDNP == nil {
		httpx.WriteError(w, r, h.logger, errs.Validation("isDnp is required"))
		return
	}

	game, err := h.service.SetDNP(r.Context(), gameID, *body.IsDNP)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, game)
}

// HandleApplyBlind handles POST /api/games/{gameID}/blind.
func (h *ScoringHandlers) HandleApplyBlind(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	innings, err := h.service.ApplyBlindScore(r.Context(), gameID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, innings)
}

// HandleDetermineWinner handles POST /api/games/{gameID}/winner.
func (h *ScoringHandlers) HandleDetermineWinner(w http.ResponseWriter, r *http.Request) {
	gameID, err := httpx.URLParamUUID(r, "gameID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	result, err := h.service.DetermineWinner(r.Context(), gameID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, result)
}

// HandleMatchSummary handles GET /api/matches/{matchID}/summary.
func (h *ScoringHandlers) HandleMatchSummary(w http.ResponseWriter, r *http.Request) {
	matchID, err := httpx.URLParamUUID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	summary, err := h.service.GetMatchSummary(r.Context(), matchID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}
