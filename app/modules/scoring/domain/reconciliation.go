package scoringdomain

import (
	"time"

	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/google/uuid"
)

// EntryStatus is the lifecycle state of one side's score entry.
type EntryStatus string

const (
	StatusPending     EntryStatus = "pending"
	StatusConfirmed   EntryStatus = "confirmed"
	StatusDiscrepancy EntryStatus = "discrepancy"
	StatusResolved    EntryStatus = "resolved"
)

// Terminal reports whether no further transition is expected for the entry
// until the side submits again.
func (s EntryStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusResolved
}

// CompositeState is the per-game reconciliation state derived from both
// entries.
type CompositeState string

const (
	StateNone            CompositeState = "none"
	StateAwaitingHome    CompositeState = "awaiting_home"
	StateAwaitingVisitor CompositeState = "awaiting_visitor"
	StateConfirmed       CompositeState = "confirmed"
	StateDiscrepancy     CompositeState = "discrepancy"
	StateResolved        CompositeState = "resolved"
)

// Entry is one side's proposed innings for a game.
type Entry struct {
	ID          uuid.UUID   `json:"id"`
	GameID      uuid.UUID   `json:"gameId"`
	Side        Side        `json:"side"`
	SubmittedBy string      `json:"submittedBy"`
	Innings     []Inning    `json:"innings"`
	Status      EntryStatus `json:"status"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

// Outcome is the result of a reconciliation transition. Statuses are empty for
// sides without an entry. Canonical is written to the ledger only when
// WriteCanonical is set.
type Outcome struct {
	State          CompositeState
	HomeStatus     EntryStatus
	VisitorStatus  EntryStatus
	WriteCanonical bool
	Canonical      []Inning
	Discrepancies  []Discrepancy
}

// StatusFor returns the outcome status for one side.
func (o Outcome) StatusFor(side Side) EntryStatus {
	if side == SideHome {
		return o.HomeStatus
	}
	return o.VisitorStatus
}

// DeriveCompositeState computes the game-level state from the two entries.
func DeriveCompositeState(home, visitor *Entry) CompositeState {
	present := make([]*Entry, 0, 2)
	for _, e := range []*Entry{home, visitor} {
		if e != nil {
			present = append(present, e)
		}
	}
	if len(present) == 0 {
		return StateNone
	}

	allResolved := true
	for _, e := range present {
		if e.Status != StatusResolved {
			allResolved = false
		}
	}
	if allResolved {
		return StateResolved
	}

	switch {
	case home == nil:
		return StateAwaitingHome
	case visitor == nil:
		return StateAwaitingVisitor
	case home.Status == StatusConfirmed && visitor.Status == StatusConfirmed:
		return StateConfirmed
	default:
		// Any other pairing needs an admin ruling.
		return StateDiscrepancy
	}
}

// ReconcileSubmission decides what happens after a side has submitted. With
// only one entry present the submission waits for the other side. With both
// present the entries are compared: a match confirms both and makes the home
// innings canonical, a difference flags both as discrepancies and leaves the
// ledger alone.
func ReconcileSubmission(home, visitor *Entry) Outcome {
	switch {
	case home == nil && visitor == nil:
		return Outcome{State: StateNone}
	case visitor == nil:
		return Outcome{State: StateAwaitingVisitor, HomeStatus: StatusPending}
	case home == nil:
		return Outcome{State: StateAwaitingHome, VisitorStatus: StatusPending}
	}

	comparison := CompareEntries(home.Innings, visitor.Innings)
	if comparison.Match {
		return Outcome{
			State:          StateConfirmed,
			HomeStatus:     StatusConfirmed,
			VisitorStatus:  StatusConfirmed,
			WriteCanonical: true,
			Canonical:      NormalizeInnings(home.Innings),
		}
	}
	return Outcome{
		State:         StateDiscrepancy,
		HomeStatus:    StatusDiscrepancy,
		VisitorStatus: StatusDiscrepancy,
		Discrepancies: comparison.Discrepancies,
	}
}

// Resolution is an admin's ruling on a game's entries. Exactly one of
// ChosenSide or CorrectedInnings must be set; a non-nil empty correction is a
// valid ruling that clears the ledger.
type Resolution struct {
	ChosenSide       *Side    `json:"chosenSide,omitempty"`
	CorrectedInnings []Inning `json:"correctedInnings,omitempty"`
}

// Validate checks the shape of the ruling without looking at any entry.
func (r Resolution) Validate() error {
	switch {
	case r.ChosenSide == nil && r.CorrectedInnings == nil:
		return errs.Validation("Must provide either chosenSide or correctedInnings")
	case r.ChosenSide != nil && r.CorrectedInnings != nil:
		return errs.Validation("Provide only one of chosenSide or correctedInnings")
	case r.ChosenSide != nil && !r.ChosenSide.Valid():
		return errs.Validation("Side must be home or visitor")
	case r.CorrectedInnings != nil:
		return ValidateInnings(r.CorrectedInnings)
	}
	return nil
}

// ResolveEntries applies an admin ruling. Every existing entry becomes
// resolved and the canonical innings are the chosen side's entry or the
// supplied correction.
func ResolveEntries(home, visitor *Entry, r Resolution) (Outcome, error) {
	if err := r.Validate(); err != nil {
		return Outcome{}, err
	}

	var canonical []Inning
	if r.ChosenSide != nil {
		chosen := home
		if *r.ChosenSide == SideVisitor {
			chosen = visitor
		}
		if chosen == nil {
			return Outcome{}, errs.NotFound("score entry", string(*r.ChosenSide))
		}
		canonical = NormalizeInnings(chosen.Innings)
	} else {
		canonical = NormalizeInnings(r.CorrectedInnings)
	}

	out := Outcome{State: StateResolved, WriteCanonical: true, Canonical: canonical}
	if home != nil {
		out.HomeStatus = StatusResolved
	}
	if visitor != nil {
		out.VisitorStatus = StatusResolved
	}
	return out, nil
}
