package scoringdomain

import (
	"encoding/json"
	"fmt"

	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/google/uuid"
)

// Side identifies one half of a game.
type Side string

const (
	SideHome    Side = "home"
	SideVisitor Side = "visitor"
)

// Sides lists both sides in canonical order.
var Sides = []Side{SideHome, SideVisitor}

func (s Side) Valid() bool {
	return s == SideHome || s == SideVisitor
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideHome {
		return SideVisitor
	}
	return SideHome
}

// order sorts home before visitor.
func (s Side) order() int {
	if s == SideHome {
		return 0
	}
	return 1
}

// ParseSide validates a side supplied by a caller.
func ParseSide(raw string) (Side, error) {
	s := Side(raw)
	if !s.Valid() {
		return "", errs.Validation("Side must be home or visitor")
	}
	return s, nil
}

// PlayerSlot is the occupant of one side of a game: a real player or the blind
// stand-in for an absent opponent. The zero value is not a valid slot.
type PlayerSlot struct {
	playerID uuid.UUID
	blind    bool
}

// RealPlayer returns a slot occupied by the given player.
func RealPlayer(id uuid.UUID) PlayerSlot {
	return PlayerSlot{playerID: id}
}

// Blind returns the blind slot.
func Blind() PlayerSlot {
	return PlayerSlot{blind: true}
}

func (p PlayerSlot) IsBlind() bool {
	return p.blind
}

// PlayerID returns the player occupying the slot; ok is false for blind slots.
func (p PlayerSlot) PlayerID() (id uuid.UUID, ok bool) {
	if p.blind || p.playerID == uuid.Nil {
		return uuid.Nil, false
	}
	return p.playerID, true
}

func (p PlayerSlot) String() string {
	if p.blind {
		return "blind"
	}
	return p.playerID.String()
}

// SlotFromColumns rebuilds a slot from its persisted (player_id, is_blind) pair.
func SlotFromColumns(playerID *uuid.UUID, isBlind bool) (PlayerSlot, error) {
	switch {
	case isBlind && playerID != nil:
		return PlayerSlot{}, fmt.Errorf("slot is both blind and player %s", playerID)
	case isBlind:
		return Blind(), nil
	case playerID == nil || *playerID == uuid.Nil:
		return PlayerSlot{}, fmt.Errorf("slot has neither a player nor the blind flag")
	default:
		return RealPlayer(*playerID), nil
	}
}

// Columns returns the persisted (player_id, is_blind) pair.
func (p PlayerSlot) Columns() (*uuid.UUID, bool) {
	if p.blind {
		return nil, true
	}
	id := p.playerID
	return &id, false
}

type playerSlotJSON struct {
	PlayerID *uuid.UUID `json:"playerId,omitempty"`
	Blind    bool       `json:"blind"`
}

func (p PlayerSlot) MarshalJSON() ([]byte, error) {
	id, blind := p.Columns()
	return json.Marshal(playerSlotJSON{PlayerID: id, Blind: blind})
}

func (p *PlayerSlot) UnmarshalJSON(data []byte) error {
	var raw playerSlotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	slot, err := SlotFromColumns(raw.PlayerID, raw.Blind)
	if err != nil {
		return err
	}
	*p = slot
	return nil
}
