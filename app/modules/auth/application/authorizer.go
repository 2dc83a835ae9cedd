package authservice

import (
	"context"
	"log/slog"
	"strings"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/google/uuid"
)

// ClaimsAuthorizer authorizes against the claims the HTTP middleware placed on
// the request context.
type ClaimsAuthorizer struct {
	logger *slog.Logger
}

// NewAuthorizer creates a new ClaimsAuthorizer.
func NewAuthorizer(logger *slog.Logger) *ClaimsAuthorizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimsAuthorizer{logger: logger}
}

func (a *ClaimsAuthorizer) RequireRole(ctx context.Context, leagueID uuid.UUID, roles ...authdomain.Role) error {
	held, err := a.roleIn(ctx, leagueID)
	if err != nil {
		return err
	}
	for _, required := range roles {
		if held.Satisfies(required) {
			return nil
		}
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	a.logger.WarnContext(ctx, "Role check failed",
		attr.ExtractCorrelationID(ctx),
		attr.UUID("league_id", leagueID),
		attr.String("held", held.String()),
		attr.String("required", strings.Join(names, ",")),
	)
	return errs.Unauthorized("Not authorized: requires " + strings.Join(names, " or ") + " role")
}

func (a *ClaimsAuthorizer) RequireLeagueMember(ctx context.Context, leagueID uuid.UUID) error {
	_, err := a.roleIn(ctx, leagueID)
	return err
}

func (a *ClaimsAuthorizer) roleIn(ctx context.Context, leagueID uuid.UUID) (authdomain.Role, error) {
	claims, ok := authdomain.ClaimsFromContext(ctx)
	if !ok {
		return "", errs.Unauthorized("Not authenticated")
	}
	if claims.IsExpired() {
		return "", errs.Unauthorized("Session expired")
	}
	role, ok := claims.RoleIn(leagueID)
	if !ok || !role.IsValid() {
		return "", errs.Unauthorized("Not a member of this league")
	}
	return role, nil
}

var _ Authorizer = (*ClaimsAuthorizer)(nil)
