package scoringdomain

import "github.com/Black-And-White-Club/darts-league/app/shared/errs"

// BlindSide returns the side occupied by the blind stand-in. Exactly one side
// must be blind.
func BlindSide(home, visitor PlayerSlot) (Side, error) {
	switch {
	case home.IsBlind() && visitor.IsBlind():
		return "", errs.Validation("Both sides cannot be blind")
	case home.IsBlind():
		return SideHome, nil
	case visitor.IsBlind():
		return SideVisitor, nil
	default:
		return "", errs.Validation("No blind player in this game")
	}
}

// BlindInnings builds the placeholder ledger for a blind game: nine regulation
// innings per side, the blind side scoring defaultRuns each inning and the
// real side zero until a captain edits it.
func BlindInnings(blind Side, defaultRuns int) []Inning {
	innings := make([]Inning, 0, 2*RegulationInnings)
	for n := 1; n <= RegulationInnings; n++ {
		for _, side := range Sides {
			runs := 0
			if side == blind {
				runs = defaultRuns
			}
			innings = append(innings, NewInning(n, side, runs))
		}
	}
	return innings
}
