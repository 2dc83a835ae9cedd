package scoringdomain

import (
	"cmp"
	"slices"
)

// ValueBySide holds the runs each side reported for one inning; nil means the
// side did not report it.
type ValueBySide struct {
	Home    *int `json:"home"`
	Visitor *int `json:"visitor"`
}

// Discrepancy is one inning where the two entries disagree.
type Discrepancy struct {
	InningNumber int         `json:"inningNumber"`
	Batter       Side        `json:"batter"`
	ValueBySide  ValueBySide `json:"valueBySide"`
}

// Comparison is the result of comparing the home and visitor entries.
type Comparison struct {
	Match         bool          `json:"match"`
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// CompareEntries compares the innings proposed by the home entry with those
// proposed by the visitor entry over the union of their (inning, batter) keys.
// A key present on only one side is a discrepancy.
func CompareEntries(home, visitor []Inning) Comparison {
	homeRuns := indexRuns(home)
	visitorRuns := indexRuns(visitor)

	keys := make([]InningKey, 0, len(homeRuns)+len(visitorRuns))
	for k := range homeRuns {
		keys = append(keys, k)
	}
	for k := range visitorRuns {
		if _, ok := homeRuns[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b InningKey) int {
		if c := cmp.Compare(a.Number, b.Number); c != 0 {
			return c
		}
		return cmp.Compare(a.Batter.order(), b.Batter.order())
	})

	discrepancies := []Discrepancy{}
	for _, k := range keys {
		h, hok := homeRuns[k]
		v, vok := visitorRuns[k]
		if hok && vok && h == v {
			continue
		}
		d := Discrepancy{InningNumber: k.Number, Batter: k.Batter}
		if hok {
			d.ValueBySide.Home = &h
		}
		if vok {
			d.ValueBySide.Visitor = &v
		}
		discrepancies = append(discrepancies, d)
	}

	return Comparison{Match: len(discrepancies) == 0, Discrepancies: discrepancies}
}

func indexRuns(innings []Inning) map[InningKey]int {
	out := make(map[InningKey]int, len(innings))
	for _, in := range innings {
		out[in.Key()] = in.Runs
	}
	return out
}
