package scoringdomain

// Winner is the outcome of a game.
type Winner string

const (
	WinnerHome         Winner = "home"
	WinnerVisitor      Winner = "visitor"
	WinnerTie          Winner = "tie"
	WinnerUndetermined Winner = "undetermined"
)

// Recorded reports whether the winner is a value that may be stored on a game.
func (w Winner) Recorded() bool {
	return w == WinnerHome || w == WinnerVisitor || w == WinnerTie
}

// Side returns the winning side; ok is false for ties and undetermined games.
func (w Winner) Side() (Side, bool) {
	switch w {
	case WinnerHome:
		return SideHome, true
	case WinnerVisitor:
		return SideVisitor, true
	default:
		return "", false
	}
}

// ParseWinner maps a stored winner column back to a Winner. Absent or unknown
// values are undetermined.
func ParseWinner(stored *string) Winner {
	if stored == nil {
		return WinnerUndetermined
	}
	w := Winner(*stored)
	if !w.Recorded() {
		return WinnerUndetermined
	}
	return w
}

// ResolveWinner sums every inning per side, extras included, and compares the
// totals. Extras get no special treatment: they break a regulation tie simply
// by adding runs.
func ResolveWinner(innings []Inning) Winner {
	if len(innings) == 0 {
		return WinnerUndetermined
	}
	home, visitor := Totals(innings)
	switch {
	case home > visitor:
		return WinnerHome
	case visitor > home:
		return WinnerVisitor
	default:
		return WinnerTie
	}
}
