package authjwt

import (
	"testing"
	"time"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-at-least-32-chars-long!!"
	testIssuer = "darts-league"
)

func TestProvider_RoundTripKeepsLeagueRoles(t *testing.T) {
	p := NewProvider(testSecret, testIssuer)
	east, west := uuid.New(), uuid.New()
	captain := &authdomain.Claims{
		UserID:   "captain-7",
		UserUUID: uuid.New(),
		Leagues: []authdomain.LeagueRole{
			{LeagueID: east, Role: authdomain.RoleCaptain},
			{LeagueID: west, Role: authdomain.RoleMember},
		},
	}

	token, err := p.GenerateToken(captain, time.Hour)
	require.NoError(t, err)

	got, err := p.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, captain.UserID, got.UserID)
	assert.Equal(t, captain.UserUUID, got.UserUUID)
	assert.Equal(t, captain.Leagues, got.Leagues)
	assert.False(t, got.IsExpired())
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, 5*time.Second)

	role, ok := got.RoleIn(west)
	require.True(t, ok)
	assert.Equal(t, authdomain.RoleMember, role)
	_, ok = got.RoleIn(uuid.New())
	assert.False(t, ok)
}

func TestProvider_TokenWithoutUUID(t *testing.T) {
	p := NewProvider(testSecret, testIssuer)

	token, err := p.GenerateToken(&authdomain.Claims{UserID: "scorekeeper"}, time.Minute)
	require.NoError(t, err)

	got, err := p.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got.UserUUID)
	assert.Empty(t, got.Leagues)
}

func TestProvider_ValidateTokenRejects(t *testing.T) {
	p := NewProvider(testSecret, testIssuer)
	member := &authdomain.Claims{
		UserID:  "member-1",
		Leagues: []authdomain.LeagueRole{{LeagueID: uuid.New(), Role: authdomain.RoleMember}},
	}

	signed := func(t *testing.T, issuer Provider, ttl time.Duration) string {
		t.Helper()
		token, err := issuer.GenerateToken(member, ttl)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "expired",
			token:   func(t *testing.T) string { return signed(t, p, -time.Minute) },
			wantErr: ErrExpiredToken,
		},
		{
			name:    "signed with another secret",
			token:   func(t *testing.T) string { return signed(t, NewProvider("another-secret", testIssuer), time.Hour) },
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "issued for another service",
			token:   func(t *testing.T) string { return signed(t, NewProvider(testSecret, "scheduler"), time.Hour) },
			wantErr: ErrInvalidToken,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: testIssuer}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.jwt" },
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
