// Package standingsdomain aggregates a season's games into team standings and
// player leaderboards. Every function is a pure function of its records and
// the league configuration.
package standingsdomain

import (
	"sort"

	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
)

// SeasonData is everything the aggregators read for one season.
type SeasonData struct {
	Matches []leaguedomain.Match
	Games   []scoringdomain.Game
	Innings map[uuid.UUID][]scoringdomain.Inning
	Teams   []leaguedomain.Team
	Players []leaguedomain.Player
}

// StandingRow is one team's line in the standings.
type StandingRow struct {
	Rank          int       `json:"rank"`
	TeamID        uuid.UUID `json:"teamId"`
	TeamName      string    `json:"teamName"`
	Division      *string   `json:"division,omitempty"`
	MatchesPlayed int       `json:"matchesPlayed"`
	GameWins      int       `json:"gameWins"`
	GameLosses    int       `json:"gameLosses"`
	GameTies      int       `json:"gameTies"`
	MatchPoints   int       `json:"matchPoints"`
	RunsScored    int       `json:"runsScored"`
	RunsAllowed   int       `json:"runsAllowed"`
	PlusMinus     int       `json:"plusMinus"`
}

// ComputeStandings ranks the teams that appear in the season's matches.
//
// Each non-DNP game gives the winning side's team a game win and the other a
// loss; a tie counts for both. Match points are game wins times the league's
// points per game win, plus one for the recorded bonus winner when the league
// awards a bonus for totals. Runs come from regulation innings only. Rows are
// ordered by match points, then runs scored, then plus/minus, all descending,
// with remaining ties kept in first-appearance order and ranked 1..N without
// sharing. A non-nil division keeps only that division's teams.
func ComputeStandings(data SeasonData, cfg leaguedomain.Config, division *string) []StandingRow {
	teams := make(map[uuid.UUID]leaguedomain.Team, len(data.Teams))
	for _, t := range data.Teams {
		teams[t.ID] = t
	}

	gamesByMatch := make(map[uuid.UUID][]scoringdomain.Game, len(data.Matches))
	for _, g := range data.Games {
		gamesByMatch[g.MatchID] = append(gamesByMatch[g.MatchID], g)
	}

	rows := make(map[uuid.UUID]*StandingRow)
	order := make([]uuid.UUID, 0)
	row := func(teamID uuid.UUID) *StandingRow {
		if r, ok := rows[teamID]; ok {
			return r
		}
		r := &StandingRow{TeamID: teamID}
		if t, ok := teams[teamID]; ok {
			r.TeamName = t.Name
			r.Division = t.Division
		}
		rows[teamID] = r
		order = append(order, teamID)
		return r
	}

	for _, m := range data.Matches {
		sides := map[scoringdomain.Side]*StandingRow{
			scoringdomain.SideHome:    row(m.HomeTeamID),
			scoringdomain.SideVisitor: row(m.VisitorTeamID),
		}

		played := false
		for _, g := range gamesByMatch[m.ID] {
			if g.IsDNP {
				continue
			}
			played = true

			home, visitor := scoringdomain.RegulationTotals(data.Innings[g.ID])
			sides[scoringdomain.SideHome].RunsScored += home
			sides[scoringdomain.SideHome].RunsAllowed += visitor
			sides[scoringdomain.SideVisitor].RunsScored += visitor
			sides[scoringdomain.SideVisitor].RunsAllowed += home

			if g.Winner == scoringdomain.WinnerTie {
				sides[scoringdomain.SideHome].GameTies++
				sides[scoringdomain.SideVisitor].GameTies++
				continue
			}
			if side, ok := g.Winner.Side(); ok {
				sides[side].GameWins++
				sides[side].MatchPoints += cfg.Scoring.PointsPerGameWin
				sides[side.Opposite()].GameLosses++
			}
		}

		if played {
			sides[scoringdomain.SideHome].MatchesPlayed++
			sides[scoringdomain.SideVisitor].MatchesPlayed++
		}
		if cfg.Scoring.BonusForTotal && m.BonusWinner != nil && m.BonusWinner.Valid() {
			sides[*m.BonusWinner].MatchPoints++
		}
	}

	out := make([]StandingRow, 0, len(order))
	for _, id := range order {
		r := rows[id]
		if division != nil {
			t, ok := teams[id]
			if !ok || !t.InDivision(*division) {
				continue
			}
		}
		r.PlusMinus = r.RunsScored - r.RunsAllowed
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MatchPoints != b.MatchPoints {
			return a.MatchPoints > b.MatchPoints
		}
		if a.RunsScored != b.RunsScored {
			return a.RunsScored > b.RunsScored
		}
		return a.PlusMinus > b.PlusMinus
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
