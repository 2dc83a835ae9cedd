package scoringdomain

import "github.com/google/uuid"

// Game is one slot pairing's contest within a match.
type Game struct {
	ID              uuid.UUID  `json:"id"`
	MatchID         uuid.UUID  `json:"matchId"`
	Slot            int        `json:"slot"`
	Home            PlayerSlot `json:"home"`
	Visitor         PlayerSlot `json:"visitor"`
	HandicapPercent *int       `json:"handicapPercent,omitempty"`
	IsDNP           bool       `json:"isDnp"`
	Winner          Winner     `json:"winner"`
}

// HasBlind reports whether either side is the blind stand-in.
func (g Game) HasBlind() bool {
	return g.Home.IsBlind() || g.Visitor.IsBlind()
}

// SlotFor returns the occupant of one side.
func (g Game) SlotFor(side Side) PlayerSlot {
	if side == SideHome {
		return g.Home
	}
	return g.Visitor
}

// Counts reports whether the game feeds standings and statistics: it was
// played and has a recorded result.
func (g Game) Counts() bool {
	return !g.IsDNP && g.Winner.Recorded()
}
