package scoringservice

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/darts-league/app/eventbus"
	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/operation"
	"github.com/Black-And-White-Club/darts-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SubmitScoreEntry stores one side's innings, replacing that side's previous
// entry, and reconciles it against the other side inside the same
// transaction. Agreement confirms both entries and writes the ledger;
// disagreement flags both and leaves the ledger alone.
func (s *ScoringService) SubmitScoreEntry(ctx context.Context, gameID uuid.UUID, side scoringdomain.Side, innings []scoringdomain.Inning) (Reconciliation, error) {
	var events []pendingEvent
	result, err := operation.Observe(ctx, s.obs, "SubmitScoreEntry", gameID.String(), func(ctx context.Context) (results.OperationResult[Reconciliation, error], error) {
		res, err := operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[Reconciliation, error], error) {
			events = nil
			gc, err := s.loadGame(ctx, db, gameID, true)
			if err != nil {
				return operation.Fail[Reconciliation](err)
			}
			if err := s.authorizer.RequireRole(ctx, gc.leagueID, authdomain.RoleCaptain, authdomain.RoleAdmin); err != nil {
				return operation.Fail[Reconciliation](err)
			}
			if _, err := scoringdomain.ParseSide(string(side)); err != nil {
				return operation.Fail[Reconciliation](err)
			}
			if err := scoringdomain.ValidateInnings(innings); err != nil {
				return operation.Fail[Reconciliation](err)
			}

			if err := s.repo.DeleteEntry(ctx, db, gameID, string(side)); err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}
			entry := &scoringdb.ScoreEntry{
				ID:          uuid.New(),
				GameID:      gameID,
				Side:        string(side),
				SubmittedBy: submitter(ctx),
				Innings:     scoringdomain.NormalizeInnings(innings),
				Status:      string(scoringdomain.StatusPending),
			}
			if err := s.repo.InsertEntry(ctx, db, entry); err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}

			home, visitor, err := s.entries(ctx, db, gameID)
			if err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}

			outcome := scoringdomain.ReconcileSubmission(home, visitor)
			if err := s.applyStatuses(ctx, db, gameID, home, visitor, outcome); err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}

			view := Reconciliation{
				GameID:        gameID,
				State:         outcome.State,
				Home:          home,
				Visitor:       visitor,
				Discrepancies: discrepanciesOf(outcome),
				Winner:        gc.game.Winner,
			}

			switch outcome.State {
			case scoringdomain.StateConfirmed:
				if err := s.replaceInnings(ctx, db, gameID, outcome.Canonical); err != nil {
					return results.OperationResult[Reconciliation, error]{}, err
				}
				gr, ev, err := s.determineWinner(ctx, db, gc.game)
				if err != nil {
					return results.OperationResult[Reconciliation, error]{}, err
				}
				view.Winner = gr.Winner
				events = append(events, pendingEvent{
					topic: eventbus.TopicEntryConfirmed,
					payload: EntryConfirmedPayload{
						GameID:  gameID,
						MatchID: gc.game.MatchID,
						Innings: outcome.Canonical,
						Winner:  gr.Winner,
					},
				})
				events = append(events, ev...)
			case scoringdomain.StateDiscrepancy:
				events = append(events, pendingEvent{
					topic: eventbus.TopicEntryDiscrepancy,
					payload: EntryDiscrepancyPayload{
						GameID:        gameID,
						MatchID:       gc.game.MatchID,
						Discrepancies: outcome.Discrepancies,
					},
				})
			}

			if s.metrics != nil {
				s.metrics.RecordOutcome(ctx, "SubmitScoreEntry", string(outcome.State))
			}
			s.logger.InfoContext(ctx, "Score entry submitted",
				attr.ExtractCorrelationID(ctx),
				attr.GameID(gameID),
				attr.String("side", string(side)),
				attr.String("state", string(outcome.State)),
				attr.Int("discrepancies", len(outcome.Discrepancies)),
			)
			return results.SuccessResult[Reconciliation, error](view), nil
		})
		if err == nil && res.IsSuccess() {
			s.publish(ctx, events)
		}
		return res, err
	})
	return operation.Unwrap(result, err)
}

// ResolveDiscrepancy applies an admin ruling from any state: every existing
// entry becomes resolved, the ledger is replaced with the chosen entry or the
// correction, and the winner is recomputed.
func (s *ScoringService) ResolveDiscrepancy(ctx context.Context, gameID uuid.UUID, resolution scoringdomain.Resolution) (Reconciliation, error) {
	var events []pendingEvent
	result, err := operation.Observe(ctx, s.obs, "ResolveDiscrepancy", gameID.String(), func(ctx context.Context) (results.OperationResult[Reconciliation, error], error) {
		res, err := operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[Reconciliation, error], error) {
			events = nil
			gc, err := s.loadGame(ctx, db, gameID, true)
			if err != nil {
				return operation.Fail[Reconciliation](err)
			}
			if err := s.authorizer.RequireRole(ctx, gc.leagueID, authdomain.RoleAdmin); err != nil {
				return operation.Fail[Reconciliation](err)
			}
			if err := resolution.Validate(); err != nil {
				return operation.Fail[Reconciliation](err)
			}

			home, visitor, err := s.entries(ctx, db, gameID)
			if err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}
			outcome, err := scoringdomain.ResolveEntries(home, visitor, resolution)
			if err != nil {
				return operation.Fail[Reconciliation](err)
			}

			if err := s.applyStatuses(ctx, db, gameID, home, visitor, outcome); err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}
			if err := s.replaceInnings(ctx, db, gameID, outcome.Canonical); err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}
			gr, ev, err := s.determineWinner(ctx, db, gc.game)
			if err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}

			resolvedBy := submitter(ctx)
			events = append(events, pendingEvent{
				topic: eventbus.TopicDiscrepancyResolved,
				payload: DiscrepancyResolvedPayload{
					GameID:     gameID,
					MatchID:    gc.game.MatchID,
					ResolvedBy: resolvedBy,
					ChosenSide: resolution.ChosenSide,
					Corrected:  resolution.CorrectedInnings != nil,
					Winner:     gr.Winner,
				},
			})
			events = append(events, ev...)

			if s.metrics != nil {
				s.metrics.RecordOutcome(ctx, "ResolveDiscrepancy", string(outcome.State))
			}
			s.logger.InfoContext(ctx, "Discrepancy resolved",
				attr.ExtractCorrelationID(ctx),
				attr.GameID(gameID),
				attr.String("resolved_by", resolvedBy),
				attr.Bool("corrected", resolution.CorrectedInnings != nil),
			)

			return results.SuccessResult[Reconciliation, error](Reconciliation{
				GameID:        gameID,
				State:         outcome.State,
				Home:          home,
				Visitor:       visitor,
				Discrepancies: []scoringdomain.Discrepancy{},
				Winner:        gr.Winner,
			}), nil
		})
		if err == nil && res.IsSuccess() {
			s.publish(ctx, events)
		}
		return res, err
	})
	return operation.Unwrap(result, err)
}

// GetReconciliation reports the game's entries, their composite state and the
// live differences between them.
func (s *ScoringService) GetReconciliation(ctx context.Context, gameID uuid.UUID) (Reconciliation, error) {
	result, err := operation.Observe(ctx, s.obs, "GetReconciliation", gameID.String(), func(ctx context.Context) (results.OperationResult[Reconciliation, error], error) {
		return operation.InTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[Reconciliation, error], error) {
			gc, err := s.loadGame(ctx, db, gameID, false)
			if err != nil {
				return operation.Fail[Reconciliation](err)
			}
			if err := s.authorizer.RequireLeagueMember(ctx, gc.leagueID); err != nil {
				return operation.Fail[Reconciliation](err)
			}

			home, visitor, err := s.entries(ctx, db, gameID)
			if err != nil {
				return results.OperationResult[Reconciliation, error]{}, err
			}

			view := Reconciliation{
				GameID:        gameID,
				State:         scoringdomain.DeriveCompositeState(home, visitor),
				Home:          home,
				Visitor:       visitor,
				Discrepancies: []scoringdomain.Discrepancy{},
				Winner:        gc.game.Winner,
			}
			if home != nil && visitor != nil {
				view.Discrepancies = scoringdomain.CompareEntries(home.Innings, visitor.Innings).Discrepancies
			}
			return results.SuccessResult[Reconciliation, error](view), nil
		})
	})
	return operation.Unwrap(result, err)
}

// applyStatuses persists the outcome's status for every present entry whose
// status changed, updating the loaded entries to match.
func (s *ScoringService) applyStatuses(ctx context.Context, db bun.IDB, gameID uuid.UUID, home, visitor *scoringdomain.Entry, outcome scoringdomain.Outcome) error {
	for _, e := range []*scoringdomain.Entry{home, visitor} {
		if e == nil {
			continue
		}
		next := outcome.StatusFor(e.Side)
		if next == "" || next == e.Status {
			continue
		}
		if err := s.repo.UpdateEntryStatus(ctx, db, gameID, string(e.Side), string(next)); err != nil {
			return fmt.Errorf("failed to update %s entry status: %w", e.Side, err)
		}
		e.Status = next
	}
	return nil
}

func discrepanciesOf(outcome scoringdomain.Outcome) []scoringdomain.Discrepancy {
	if outcome.Discrepancies == nil {
		return []scoringdomain.Discrepancy{}
	}
	return outcome.Discrepancies
}

// submitter identifies the caller for the audit columns.
func submitter(ctx context.Context) string {
	if claims, ok := authdomain.ClaimsFromContext(ctx); ok {
		return claims.UserID
	}
	return ""
}
