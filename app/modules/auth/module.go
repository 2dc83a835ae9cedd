package auth

import (
	"context"
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/darts-league/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/darts-league/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/darts-league/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/Black-And-White-Club/darts-league/config"
	"golang.org/x/time/rate"
)

// Module represents the auth module: bearer token verification plus the
// role checks every other module delegates to.
type Module struct {
	config     *config.Config
	provider   authjwt.Provider
	authorizer *authservice.ClaimsAuthorizer
	logger     *slog.Logger
}

// NewModule creates a new auth module.
func NewModule(ctx context.Context, cfg *config.Config, obs observability.Observability) (*Module, error) {
	logger := obs.Provider.Logger

	logger.InfoContext(ctx, "Initializing auth module")

	return &Module{
		config:     cfg,
		provider:   authjwt.NewProvider(cfg.JWT.Secret, cfg.JWT.Issuer),
		authorizer: authservice.NewAuthorizer(logger),
		logger:     logger,
	}, nil
}

// Authenticate returns the middleware that verifies bearer tokens.
func (m *Module) Authenticate() func(http.Handler) http.Handler {
	return authhandlers.AuthMiddleware(m.provider, m.logger)
}

// RateLimit returns the per-IP rate limiting middleware.
func (m *Module) RateLimit() func(http.Handler) http.Handler {
	limiter := authhandlers.NewClientLimiter(rate.Limit(m.config.HTTP.RateLimit), m.config.HTTP.RateBurst)
	return authhandlers.RateLimitMiddleware(limiter)
}

// CORS returns the CORS middleware for the configured origins.
func (m *Module) CORS() func(http.Handler) http.Handler {
	return authhandlers.CORSMiddleware(m.config.HTTP.AllowedOrigins)
}

// GetAuthorizer returns the authorizer for use by other modules.
func (m *Module) GetAuthorizer() authservice.Authorizer {
	return m.authorizer
}

// GetProvider returns the token provider.
func (m *Module) GetProvider() authjwt.Provider {
	return m.provider
}

// Close stops the auth module.
func (m *Module) Close() error {
	m.logger.Info("Auth module stopped")
	return nil
}
