package scoringdomain

import (
	"cmp"
	"slices"

	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
)

const (
	// RegulationInnings is the number of innings in a regulation game.
	RegulationInnings = 9
	MinRuns           = 0
	MaxRuns           = 9
)

// Inning is one batter's runs for one inning of a game.
type Inning struct {
	Number  int  `json:"inningNumber"`
	Batter  Side `json:"batter"`
	Runs    int  `json:"runs"`
	IsExtra bool `json:"isExtra"`
}

// InningKey identifies an inning within one game.
type InningKey struct {
	Number int
	Batter Side
}

func (i Inning) Key() InningKey {
	return InningKey{Number: i.Number, Batter: i.Batter}
}

// NewInning builds an inning, flagging numbers past regulation as extra.
func NewInning(number int, batter Side, runs int) Inning {
	return Inning{Number: number, Batter: batter, Runs: runs, IsExtra: number > RegulationInnings}
}

// ValidateInnings checks a full inning set. Nothing is written when it fails.
func ValidateInnings(innings []Inning) error {
	seen := make(map[InningKey]struct{}, len(innings))
	for _, in := range innings {
		if in.Runs < MinRuns || in.Runs > MaxRuns {
			return errs.Validation("Runs must be between 0 and 9")
		}
		if in.Number < 1 {
			return errs.Validation("Inning number must be at least 1")
		}
		if !in.Batter.Valid() {
			return errs.Validation("Batter must be home or visitor")
		}
		if _, dup := seen[in.Key()]; dup {
			return errs.Validation("Duplicate entry for inning %d (%s)", in.Number, in.Batter)
		}
		seen[in.Key()] = struct{}{}
	}
	return nil
}

// NormalizeInnings returns a sorted copy with the extra flag derived from the
// inning number.
func NormalizeInnings(innings []Inning) []Inning {
	out := make([]Inning, len(innings))
	for i, in := range innings {
		out[i] = NewInning(in.Number, in.Batter, in.Runs)
	}
	SortInnings(out)
	return out
}

// SortInnings orders innings by number, home before visitor.
func SortInnings(innings []Inning) {
	slices.SortStableFunc(innings, func(a, b Inning) int {
		if c := cmp.Compare(a.Number, b.Number); c != 0 {
			return c
		}
		return cmp.Compare(a.Batter.order(), b.Batter.order())
	})
}

// Totals sums runs per side across every inning, extras included.
func Totals(innings []Inning) (home, visitor int) {
	for _, in := range innings {
		switch in.Batter {
		case SideHome:
			home += in.Runs
		case SideVisitor:
			visitor += in.Runs
		}
	}
	return home, visitor
}

// RegulationTotals sums runs per side across regulation innings only.
func RegulationTotals(innings []Inning) (home, visitor int) {
	for _, in := range innings {
		if in.IsExtra {
			continue
		}
		switch in.Batter {
		case SideHome:
			home += in.Runs
		case SideVisitor:
			visitor += in.Runs
		}
	}
	return home, visitor
}
