package testutils

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	"github.com/google/uuid"
)

// AsRole returns ctx carrying claims that grant role in the league.
func AsRole(ctx context.Context, leagueID uuid.UUID, role authdomain.Role) context.Context {
	now := time.Now()
	return authdomain.WithClaims(ctx, &authdomain.Claims{
		UserID:    "integration-" + string(role),
		UserUUID:  uuid.New(),
		Leagues:   []authdomain.LeagueRole{{LeagueID: leagueID, Role: role}},
		ExpiresAt: now.Add(time.Hour),
		IssuedAt:  now,
	})
}
