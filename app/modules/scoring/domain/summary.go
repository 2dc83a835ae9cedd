package scoringdomain

import "github.com/google/uuid"

// GameSummary is one game's line in a match summary.
type GameSummary struct {
	GameID      uuid.UUID `json:"gameId"`
	Slot        int       `json:"slot"`
	IsDNP       bool      `json:"isDnp"`
	Winner      Winner    `json:"winner"`
	HomeRuns    int       `json:"homeRuns"`
	VisitorRuns int       `json:"visitorRuns"`
}

// MatchSummary aggregates a match's games for display.
type MatchSummary struct {
	MatchID         uuid.UUID     `json:"matchId"`
	HomeRuns        int           `json:"homeRuns"`
	VisitorRuns     int           `json:"visitorRuns"`
	HomeGameWins    int           `json:"homeGameWins"`
	VisitorGameWins int           `json:"visitorGameWins"`
	Ties            int           `json:"ties"`
	TotalsWinner    *Side         `json:"totalsWinner,omitempty"`
	Games           []GameSummary `json:"games"`
}

// SummarizeMatch totals regulation runs over the match's non-DNP games and
// counts recorded game wins. TotalsWinner is the side the run totals favour,
// nil when they are level. The stored bonus winner on the match is not
// consulted.
func SummarizeMatch(matchID uuid.UUID, games []Game, innings map[uuid.UUID][]Inning) MatchSummary {
	summary := MatchSummary{MatchID: matchID, Games: make([]GameSummary, 0, len(games))}

	for _, g := range games {
		line := GameSummary{GameID: g.ID, Slot: g.Slot, IsDNP: g.IsDNP, Winner: g.Winner}
		if g.IsDNP {
			line.Winner = WinnerUndetermined
			summary.Games = append(summary.Games, line)
			continue
		}

		line.HomeRuns, line.VisitorRuns = RegulationTotals(innings[g.ID])
		summary.HomeRuns += line.HomeRuns
		summary.VisitorRuns += line.VisitorRuns

		switch g.Winner {
		case WinnerHome:
			summary.HomeGameWins++
		case WinnerVisitor:
			summary.VisitorGameWins++
		case WinnerTie:
			summary.Ties++
		}
		summary.Games = append(summary.Games, line)
	}

	switch {
	case summary.HomeRuns > summary.VisitorRuns:
		side := SideHome
		summary.TotalsWinner = &side
	case summary.VisitorRuns > summary.HomeRuns:
		side := SideVisitor
		summary.TotalsWinner = &side
	}
	return summary
}
