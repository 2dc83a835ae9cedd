package scoringdb

import (
	"fmt"
	"time"

	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Game is the games row. Each side's slot is stored as a nullable player id
// plus a blind flag.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID              uuid.UUID  `bun:"id,pk,type:uuid"`
	MatchID         uuid.UUID  `bun:"match_id,type:uuid,notnull"`
	Slot            int        `bun:"slot,notnull"`
	HomePlayerID    *uuid.UUID `bun:"home_player_id,type:uuid"`
	HomeIsBlind     bool       `bun:"home_is_blind,notnull"`
	VisitorPlayerID *uuid.UUID `bun:"visitor_player_id,type:uuid"`
	VisitorIsBlind  bool       `bun:"visitor_is_blind,notnull"`
	HandicapPercent *int       `bun:"handicap_percent"`
	IsDNP           bool       `bun:"is_dnp,notnull"`
	Winner          *string    `bun:"winner"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the row to a domain game.
func (g *Game) ToDomain() (scoringdomain.Game, error) {
	home, err := scoringdomain.SlotFromColumns(g.HomePlayerID, g.HomeIsBlind)
	if err != nil {
		return scoringdomain.Game{}, fmt.Errorf("game %s home slot: %w", g.ID, err)
	}
	visitor, err := scoringdomain.SlotFromColumns(g.VisitorPlayerID, g.VisitorIsBlind)
	if err != nil {
		return scoringdomain.Game{}, fmt.Errorf("game %s visitor slot: %w", g.ID, err)
	}
	return scoringdomain.Game{
		ID:              g.ID,
		MatchID:         g.MatchID,
		Slot:            g.Slot,
		Home:            home,
		Visitor:         visitor,
		HandicapPercent: g.HandicapPercent,
		IsDNP:           g.IsDNP,
		Winner:          scoringdomain.ParseWinner(g.Winner),
	}, nil
}

// GameFromDomain builds a row from a domain game.
func GameFromDomain(g scoringdomain.Game) *Game {
	homeID, homeBlind := g.Home.Columns()
	visitorID, visitorBlind := g.Visitor.Columns()
	row := &Game{
		ID:              g.ID,
		MatchID:         g.MatchID,
		Slot:            g.Slot,
		HomePlayerID:    homeID,
		HomeIsBlind:     homeBlind,
		VisitorPlayerID: visitorID,
		VisitorIsBlind:  visitorBlind,
		HandicapPercent: g.HandicapPercent,
		IsDNP:           g.IsDNP,
	}
	if g.Winner.Recorded() {
		w := string(g.Winner)
		row.Winner = &w
	}
	return row
}

// Inning is one row of a game's canonical ledger.
type Inning struct {
	bun.BaseModel `bun:"table:innings,alias:i"`

	GameID       uuid.UUID `bun:"game_id,pk,type:uuid"`
	InningNumber int       `bun:"inning_number,pk"`
	Batter       string    `bun:"batter,pk"`
	Runs         int       `bun:"runs,notnull"`
	IsExtra      bool      `bun:"is_extra,notnull"`
}

func (i *Inning) ToDomain() scoringdomain.Inning {
	return scoringdomain.Inning{
		Number:  i.InningNumber,
		Batter:  scoringdomain.Side(i.Batter),
		Runs:    i.Runs,
		IsExtra: i.IsExtra,
	}
}

// ScoreEntry is one side's proposed innings, stored as jsonb.
type ScoreEntry struct {
	bun.BaseModel `bun:"table:score_entries,alias:se"`

	ID          uuid.UUID              `bun:"id,pk,type:uuid"`
	GameID      uuid.UUID              `bun:"game_id,type:uuid,notnull"`
	Side        string                 `bun:"side,notnull"`
	SubmittedBy string                 `bun:"submitted_by,notnull"`
	Innings     []scoringdomain.Inning `bun:"innings,type:jsonb,notnull"`
	Status      string                 `bun:"status,notnull"`
	SubmittedAt time.Time              `bun:"submitted_at,nullzero,notnull,default:current_timestamp"`
}

func (e *ScoreEntry) ToDomain() scoringdomain.Entry {
	return scoringdomain.Entry{
		ID:          e.ID,
		GameID:      e.GameID,
		Side:        scoringdomain.Side(e.Side),
		SubmittedBy: e.SubmittedBy,
		Innings:     e.Innings,
		Status:      scoringdomain.EntryStatus(e.Status),
		SubmittedAt: e.SubmittedAt,
	}
}
