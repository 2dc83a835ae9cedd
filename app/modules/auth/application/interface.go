package authservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_authorizer.go -package=mocks

// Authorizer checks the caller attached to the context against a league.
// Failures are errs.AuthorizationError and are propagated unchanged.
type Authorizer interface {
	// RequireRole passes when the caller holds a role satisfying any of roles.
	RequireRole(ctx context.Context, leagueID uuid.UUID, roles ...authdomain.Role) error

	// RequireLeagueMember passes for any role in the league.
	RequireLeagueMember(ctx context.Context, leagueID uuid.UUID) error
}
