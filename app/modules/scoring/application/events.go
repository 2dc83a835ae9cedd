package scoringservice

import (
	"context"

	"github.com/Black-And-White-Club/darts-league/app/eventbus"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/google/uuid"
)

// EntryConfirmedPayload is published when both sides' entries agree.
type EntryConfirmedPayload struct {
	GameID  uuid.UUID              `json:"game_id"`
	MatchID uuid.UUID              `json:"match_id"`
	Innings []scoringdomain.Inning `json:"innings"`
	Winner  scoringdomain.Winner   `json:"winner"`
}

// EntryDiscrepancyPayload is published when the entries disagree.
type EntryDiscrepancyPayload struct {
	GameID        uuid.UUID                   `json:"game_id"`
	MatchID       uuid.UUID                   `json:"match_id"`
	Discrepancies []scoringdomain.Discrepancy `json:"discrepancies"`
}

// DiscrepancyResolvedPayload is published after an admin ruling.
type DiscrepancyResolvedPayload struct {
	GameID     uuid.UUID            `json:"game_id"`
	MatchID    uuid.UUID            `json:"match_id"`
	ResolvedBy string               `json:"resolved_by"`
	ChosenSide *scoringdomain.Side  `json:"chosen_side,omitempty"`
	Corrected  bool                 `json:"corrected"`
	Winner     scoringdomain.Winner `json:"winner"`
}

// GameWinnerPayload is published whenever a stored winner changes.
type GameWinnerPayload struct {
	GameID  uuid.UUID            `json:"game_id"`
	MatchID uuid.UUID            `json:"match_id"`
	Winner  scoringdomain.Winner `json:"winner"`
}

// pendingEvent is collected inside a transaction and published after commit.
type pendingEvent struct {
	topic   string
	payload any
}

// publish sends events after the transaction has committed. Failures are
// logged; the committed state is authoritative and consumers can re-read it.
func (s *ScoringService) publish(ctx context.Context, events []pendingEvent) {
	if s.eventBus == nil {
		return
	}
	for _, ev := range events {
		msg, err := eventbus.NewJSONMessage(ctx, ev.payload)
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to encode event",
				attr.ExtractCorrelationID(ctx),
				attr.String("topic", ev.topic),
				attr.Error(err),
			)
			continue
		}
		if err := s.eventBus.Publish(ev.topic, msg); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish event",
				attr.ExtractCorrelationID(ctx),
				attr.String("topic", ev.topic),
				attr.Error(err),
			)
		}
	}
}
