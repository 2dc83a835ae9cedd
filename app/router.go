package app

import (
	"net/http"

	authhandlers "github.com/Black-And-White-Club/darts-league/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/Black-And-White-Club/darts-league/app/shared/httpx"
	"github.com/Black-And-White-Club/darts-league/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every module's routes. Everything under /api requires a
// bearer token; /health and /metrics do not.
func NewRouter(cfg *config.Config, obs observability.Observability, m *Modules) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(authhandlers.CorrelationMiddleware)
	r.Use(m.Auth.CORS())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Observability.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(obs.Registry.Prometheus, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(m.Auth.RateLimit())
		api.Use(m.Auth.Authenticate())

		api.Route("/games/{gameID}", m.Scoring.GameRoutes)
		api.Route("/matches/{matchID}", func(r chi.Router) {
			m.Scoring.MatchRoutes(r)
			m.Handicap.MatchRoutes(r)
		})
		api.Route("/leagues/{leagueID}", func(r chi.Router) {
			m.League.LeagueRoutes(r)
			m.Standings.LeagueRoutes(r)
		})
	})

	return r
}
