package authjwt

import (
	"errors"
	"fmt"
	"time"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// leagueClaims is the token payload: the registered claims plus the caller's
// per-league roles.
type leagueClaims struct {
	jwt.RegisteredClaims
	UserUUID string                  `json:"user_uuid,omitempty"`
	Leagues  []authdomain.LeagueRole `json:"leagues,omitempty"`
}

func (lc *leagueClaims) toDomain() *authdomain.Claims {
	c := &authdomain.Claims{UserID: lc.Subject, Leagues: lc.Leagues}
	if id, err := uuid.Parse(lc.UserUUID); err == nil {
		c.UserUUID = id
	}
	if lc.ExpiresAt != nil {
		c.ExpiresAt = lc.ExpiresAt.Time
	}
	if lc.IssuedAt != nil {
		c.IssuedAt = lc.IssuedAt.Time
	}
	return c
}

type hmacProvider struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewProvider returns an HS256 provider. An empty issuer disables the issuer
// check.
func NewProvider(secret, issuer string) Provider {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &hmacProvider{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(opts...),
	}
}

func (p *hmacProvider) GenerateToken(c *authdomain.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	payload := &leagueClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    p.issuer,
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Leagues: c.Leagues,
	}
	if c.UserUUID != uuid.Nil {
		payload.UserUUID = c.UserUUID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (p *hmacProvider) ValidateToken(raw string) (*authdomain.Claims, error) {
	payload := &leagueClaims{}
	token, err := p.parser.ParseWithClaims(raw, payload, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	}
	return payload.toDomain(), nil
}
