package handicapservice

import (
	"context"

	handicapdomain "github.com/Black-And-White-Club/darts-league/app/modules/handicap/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
)

// Service exposes read-time handicap views.
type Service interface {
	// GetMatchHandicaps reports every game of a match with its resolved
	// percent, spot runs and handicapped result (league member).
	GetMatchHandicaps(ctx context.Context, matchID uuid.UUID) (MatchHandicaps, error)
}

// AverageSource supplies un-rounded season averages keyed by player id.
type AverageSource interface {
	PlayerAverages(ctx context.Context, leagueID uuid.UUID, seasonID uuid.UUID) (map[uuid.UUID]float64, error)
}

// ExemptReason explains why a game receives no handicap.
type ExemptReason string

const (
	ExemptBlind ExemptReason = "blind"
	ExemptDNP   ExemptReason = "dnp"
)

// MatchHandicaps is the handicap view of one match.
type MatchHandicaps struct {
	MatchID  uuid.UUID      `json:"matchId"`
	SeasonID uuid.UUID      `json:"seasonId"`
	Enabled  bool           `json:"enabled"`
	Games    []GameHandicap `json:"games"`
}

// GameHandicap is one game's handicap line. Averages are rounded for display
// and nil when the player has no counted games yet.
type GameHandicap struct {
	GameID         uuid.UUID               `json:"gameId"`
	Slot           int                     `json:"slot"`
	Percent        int                     `json:"percent"`
	HomeAverage    *float64                `json:"homeAverage"`
	VisitorAverage *float64                `json:"visitorAverage"`
	Spot           handicapdomain.SpotRuns `json:"spot"`
	RawHome        int                     `json:"rawHome"`
	RawVisitor     int                     `json:"rawVisitor"`
	Adjusted       handicapdomain.Adjusted `json:"adjusted"`
	StoredWinner   scoringdomain.Winner    `json:"storedWinner"`
	Exempt         bool                    `json:"exempt"`
	ExemptReason   ExemptReason            `json:"exemptReason,omitempty"`
}
