package scoringservice

import (
	"context"

	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
)

// Service defines the contract for game scoring operations.
type Service interface {
	// ListInnings returns a game's canonical ledger (league member).
	ListInnings(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error)

	// DetermineWinner recomputes and stores a game's winner from its ledger (captain or admin).
	DetermineWinner(ctx context.Context, gameID uuid.UUID) (GameResult, error)

	// SetDNP flags or unflags a game as not played (captain or admin).
	SetDNP(ctx context.Context, gameID uuid.UUID, isDNP bool) (scoringdomain.Game, error)

	// ApplyBlindScore writes the placeholder ledger for a game against the blind (captain or admin).
	ApplyBlindScore(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error)

	// SubmitScoreEntry records one side's innings and reconciles against the other side (captain or admin).
	SubmitScoreEntry(ctx context.Context, gameID uuid.UUID, side scoringdomain.Side, innings []scoringdomain.Inning) (Reconciliation, error)

	// ResolveDiscrepancy applies an admin ruling to a game's entries (admin).
	ResolveDiscrepancy(ctx context.Context, gameID uuid.UUID, resolution scoringdomain.Resolution) (Reconciliation, error)

	// GetReconciliation reports a game's entries and composite state (league member).
	GetReconciliation(ctx context.Context, gameID uuid.UUID) (Reconciliation, error)

	// GetMatchSummary aggregates a match's games for display (league member).
	GetMatchSummary(ctx context.Context, matchID uuid.UUID) (scoringdomain.MatchSummary, error)
}

// GameResult is a game's winner together with the totals it was derived from.
type GameResult struct {
	GameID       uuid.UUID            `json:"gameId"`
	Winner       scoringdomain.Winner `json:"winner"`
	HomeTotal    int                  `json:"homeTotal"`
	VisitorTotal int                  `json:"visitorTotal"`
	IsDNP        bool                 `json:"isDnp"`
}

// Reconciliation is the dual-entry view of a game.
type Reconciliation struct {
	GameID        uuid.UUID                    `json:"gameId"`
	State         scoringdomain.CompositeState `json:"state"`
	Home          *scoringdomain.Entry         `json:"home,omitempty"`
	Visitor       *scoringdomain.Entry         `json:"visitor,omitempty"`
	Discrepancies []scoringdomain.Discrepancy  `json:"discrepancies"`
	Winner        scoringdomain.Winner         `json:"winner"`
}
