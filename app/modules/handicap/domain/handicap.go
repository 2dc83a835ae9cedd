// Package handicapdomain computes read-time handicap adjustments. Nothing here
// writes a stored winner.
package handicapdomain

import (
	"math"

	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
)

// floorEpsilon absorbs float error in products such as 0.9999999 * 100.
const floorEpsilon = 1e-9

// ResolveHandicapPercent picks the most specific percent: game override, then
// match override, then the league default.
func ResolveHandicapPercent(league leaguedomain.HandicapSettings, matchOverride, gameOverride *int) int {
	switch {
	case gameOverride != nil:
		return *gameOverride
	case matchOverride != nil:
		return *matchOverride
	default:
		return league.DefaultPercent
	}
}

// SpotRuns is the handicap granted to one side. Recipient is nil when Runs is 0.
type SpotRuns struct {
	Runs      int                 `json:"spotRuns"`
	Recipient *scoringdomain.Side `json:"recipientSide"`
}

// ComputeSpotRuns grants floor(|home - visitor| * percent / 100) runs to the
// side with the lower average.
func ComputeSpotRuns(avgHome, avgVisitor float64, percent int) SpotRuns {
	diff := math.Abs(avgHome - avgVisitor)
	runs := int(math.Floor(diff*float64(percent)/100 + floorEpsilon))
	if runs <= 0 {
		return SpotRuns{}
	}

	recipient := scoringdomain.SideHome
	if avgVisitor < avgHome {
		recipient = scoringdomain.SideVisitor
	}
	return SpotRuns{Runs: runs, Recipient: &recipient}
}

// Adjusted is a raw comparison after spot runs were added.
type Adjusted struct {
	Home    int                  `json:"adjustedHome"`
	Visitor int                  `json:"adjustedVisitor"`
	Winner  scoringdomain.Winner `json:"winner"`
}

// DetermineHandicappedWinner adds spot runs to the recipient's raw total and
// compares the results.
func DetermineHandicappedWinner(rawHome, rawVisitor, spot int, recipient *scoringdomain.Side) Adjusted {
	adj := Adjusted{Home: rawHome, Visitor: rawVisitor}
	if recipient != nil {
		switch *recipient {
		case scoringdomain.SideHome:
			adj.Home += spot
		case scoringdomain.SideVisitor:
			adj.Visitor += spot
		}
	}

	switch {
	case adj.Home > adj.Visitor:
		adj.Winner = scoringdomain.WinnerHome
	case adj.Visitor > adj.Home:
		adj.Winner = scoringdomain.WinnerVisitor
	default:
		adj.Winner = scoringdomain.WinnerTie
	}
	return adj
}

// RoundAverage rounds an average to one decimal place for display.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}
