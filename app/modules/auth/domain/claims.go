package authdomain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeagueRole represents a user's role within a specific league.
type LeagueRole struct {
	LeagueID uuid.UUID `json:"league_id"`
	Role     Role      `json:"role"`
}

// Claims represents the domain model for authentication claims.
type Claims struct {
	UserID    string
	UserUUID  uuid.UUID
	Leagues   []LeagueRole
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// RoleIn returns the caller's role in the given league.
func (c *Claims) RoleIn(leagueID uuid.UUID) (Role, bool) {
	for _, lr := range c.Leagues {
		if lr.LeagueID == leagueID {
			return lr.Role, true
		}
	}
	return "", false
}

type claimsKey struct{}

// WithClaims attaches verified claims to the context.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims attached by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}
