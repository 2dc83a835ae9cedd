package scoringhandlers

import (
	"context"

	scoringservice "github.com/Black-And-White-Club/darts-league/app/modules/scoring/application"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
)

type FakeScoringService struct {
	calls []string

	ListInningsFunc        func(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error)
	DetermineWinnerFunc    func(ctx context.Context, gameID uuid.UUID) (scoringservice.GameResult, error)
	SetDNPFunc             func(ctx context.Context, gameID uuid.UUID, isDNP bool) (scoringdomain.Game, error)
	ApplyBlindScoreFunc    func(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error)
	SubmitScoreEntryFunc   func(ctx context.Context, gameID uuid.UUID, side scoringdomain.Side, innings []scoringdomain.Inning) (scoringservice.Reconciliation, error)
	ResolveDiscrepancyFunc func(ctx context.Context, gameID uuid.UUID, resolution scoringdomain.Resolution) (scoringservice.Reconciliation, error)
	GetReconciliationFunc  func(ctx context.Context, gameID uuid.UUID) (scoringservice.Reconciliation, error)
	GetMatchSummaryFunc    func(ctx context.Context, matchID uuid.UUID) (scoringdomain.MatchSummary, error)
}

func (f *FakeScoringService) record(step string) {
	f.calls = append(f.calls, step)
}

func (f *FakeScoringService) ListInnings(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error) {
	f.record("ListInnings")
	if f.ListInningsFunc != nil {
		return f.ListInningsFunc(ctx, gameID)
	}
	return nil, nil
}

func (f *FakeScoringService) DetermineWinner(ctx context.Context, gameID uuid.UUID) (scoringservice.GameResult, error) {
	f.record("DetermineWinner")
	if f.DetermineWinnerFunc != nil {
		return f.DetermineWinnerFunc(ctx, gameID)
	}
	return scoringservice.GameResult{GameID: gameID, Winner: scoringdomain.WinnerUndetermined}, nil
}

func (f *FakeScoringService) SetDNP(ctx context.Context, gameID uuid.UUID, isDNP bool) (scoringdomain.Game, error) {
	f.record("SetDNP")
	if f.SetDNPFunc != nil {
		return f.SetDNPFunc(ctx, gameID, isDNP)
	}
	return scoringdomain.Game{ID: gameID, IsDNP: isDNP, Home: scoringdomain.Blind(), Visitor: scoringdomain.RealPlayer(uuid.New())}, nil
}

func (f *FakeScoringService) ApplyBlindScore(ctx context.Context, gameID uuid.UUID) ([]scoringdomain.Inning, error) {
	f.record("ApplyBlindScore")
	if f.ApplyBlindScoreFunc != nil {
		return f.ApplyBlindScoreFunc(ctx, gameID)
	}
	return scoringdomain.BlindInnings(scoringdomain.SideHome, 0), nil
}

func (f *FakeScoringService) SubmitScoreEntry(ctx context.Context, gameID uuid.UUID, side scoringdomain.Side, innings []scoringdomain.Inning) (scoringservice.Reconciliation, error) {
	f.record("SubmitScoreEntry")
	if f.SubmitScoreEntryFunc != nil {
		return f.SubmitScoreEntryFunc(ctx, gameID, side, innings)
	}
	return scoringservice.Reconciliation{GameID: gameID, State: scoringdomain.StateAwaitingVisitor}, nil
}

func (f *FakeScoringService) ResolveDiscrepancy(ctx context.Context, gameID uuid.UUID, resolution scoringdomain.Resolution) (scoringservice.Reconciliation, error) {
	f.record("ResolveDiscrepancy")
	if f.ResolveDiscrepancyFunc != nil {
		return f.ResolveDiscrepancyFunc(ctx, gameID, resolution)
	}
	return scoringservice.Reconciliation{GameID: gameID, State: scoringdomain.StateResolved}, nil
}

func (f *FakeScoringService) GetReconciliation(ctx context.Context, gameID uuid.UUID) (scoringservice.Reconciliation, error) {
	f.record("GetReconciliation")
	if f.GetReconciliationFunc != nil {
		return f.GetReconciliationFunc(ctx, gameID)
	}
	return scoringservice.Reconciliation{GameID: gameID, State: scoringdomain.StateNone}, nil
}

func (f *FakeScoringService) GetMatchSummary(ctx context.Context, matchID uuid.UUID) (scoringdomain.MatchSummary, error) {
	f.record("GetMatchSummary")
	if f.GetMatchSummaryFunc != nil {
		return f.GetMatchSummaryFunc(ctx, matchID)
	}
	return scoringdomain.MatchSummary{MatchID: matchID, Games: []scoringdomain.GameSummary{}}, nil
}

func (f *FakeScoringService) Calls() []string {
	return append([]string(nil), f.calls...)
}

var _ scoringservice.Service = (*FakeScoringService)(nil)
