package standingsdomain

import (
	"sort"

	leaguedomain "github.com/Black-And-White-Club/darts-league/app/modules/league/domain"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/darts-league/app/shared/errs"
	"github.com/google/uuid"
)

// LeaderboardSize is the length of every category list.
const LeaderboardSize = 10

// PlayerSeasonStats is one player's season line.
type PlayerSeasonStats struct {
	PlayerID    uuid.UUID `json:"playerId"`
	PlayerName  string    `json:"playerName"`
	TeamID      uuid.UUID `json:"teamId"`
	TeamName    string    `json:"teamName"`
	GamesPlayed int       `json:"gamesPlayed"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Ties        int       `json:"ties"`
	TotalPlus   int       `json:"totalPlus"`
	TotalMinus  int       `json:"totalMinus"`
	HighInnings int       `json:"highInnings"`
}

// Average is runs per game played, zero without games.
func (s PlayerSeasonStats) Average() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPlus) / float64(s.GamesPlayed)
}

// PlusMinus is own runs less opponent runs.
func (s PlayerSeasonStats) PlusMinus() int {
	return s.TotalPlus - s.TotalMinus
}

// BuildPlayerSeasonStats rolls up every real player's non-DNP games that have
// a recorded winner. Only regulation innings count toward run totals and high
// innings. Players that do not resolve to one of the league's teams are
// skipped. Output follows roster order and omits players without games.
func BuildPlayerSeasonStats(games []scoringdomain.Game, innings map[uuid.UUID][]scoringdomain.Inning, players []leaguedomain.Player, teams []leaguedomain.Team) []PlayerSeasonStats {
	teamNames := make(map[uuid.UUID]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	stats := make(map[uuid.UUID]*PlayerSeasonStats, len(players))
	for _, p := range players {
		name, ok := teamNames[p.TeamID]
		if !ok {
			continue
		}
		stats[p.ID] = &PlayerSeasonStats{PlayerID: p.ID, PlayerName: p.Name, TeamID: p.TeamID, TeamName: name}
	}

	for _, g := range games {
		if !g.Counts() {
			continue
		}
		regulation := regulationRuns(innings[g.ID])

		for _, side := range scoringdomain.Sides {
			id, ok := g.SlotFor(side).PlayerID()
			if !ok {
				continue
			}
			s, ok := stats[id]
			if !ok {
				continue
			}

			s.GamesPlayed++
			switch won, decided := g.Winner.Side(); {
			case !decided:
				s.Ties++
			case won == side:
				s.Wins++
			default:
				s.Losses++
			}

			for _, in := range regulation {
				if in.Batter == side {
					s.TotalPlus += in.Runs
					if in.Runs == scoringdomain.MaxRuns {
						s.HighInnings++
					}
				} else {
					s.TotalMinus += in.Runs
				}
			}
		}
	}

	out := make([]PlayerSeasonStats, 0, len(stats))
	for _, p := range players {
		if s, ok := stats[p.ID]; ok && s.GamesPlayed > 0 {
			out = append(out, *s)
		}
	}
	return out
}

func regulationRuns(innings []scoringdomain.Inning) []scoringdomain.Inning {
	out := make([]scoringdomain.Inning, 0, len(innings))
	for _, in := range innings {
		if !in.IsExtra {
			out = append(out, in)
		}
	}
	return out
}

// Category names one leaderboard list.
type Category string

const (
	CategoryHighestAverage  Category = "highest_average"
	CategoryMostRuns        Category = "most_runs"
	CategoryBestPlusMinus   Category = "best_plus_minus"
	CategoryMostHighInnings Category = "most_high_innings"
	CategoryMostWins        Category = "most_wins"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryHighestAverage,
	CategoryMostRuns,
	CategoryBestPlusMinus,
	CategoryMostHighInnings,
	CategoryMostWins,
}

// ParseCategory validates a category supplied by a caller.
func ParseCategory(raw string) (Category, error) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", errs.Validation("Unknown leaderboard category %q", raw)
}

// Title is the category's display name.
func (c Category) Title() string {
	switch c {
	case CategoryHighestAverage:
		return "Highest Average"
	case CategoryMostRuns:
		return "Most Runs"
	case CategoryBestPlusMinus:
		return "Best Plus/Minus"
	case CategoryMostHighInnings:
		return "Most High Innings"
	case CategoryMostWins:
		return "Most Wins"
	default:
		return string(c)
	}
}

func (c Category) metric(s PlayerSeasonStats) float64 {
	switch c {
	case CategoryHighestAverage:
		return s.Average()
	case CategoryMostRuns:
		return float64(s.TotalPlus)
	case CategoryBestPlusMinus:
		return float64(s.PlusMinus())
	case CategoryMostHighInnings:
		return float64(s.HighInnings)
	case CategoryMostWins:
		return float64(s.Wins)
	default:
		return 0
	}
}

// LeaderboardEntry is one ranked line of a category.
type LeaderboardEntry struct {
	Rank       int       `json:"rank"`
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	TeamID     uuid.UUID `json:"teamId"`
	TeamName   string    `json:"teamName"`
	Value      float64   `json:"value"`
}

// Leaderboards holds the five category lists.
type Leaderboards struct {
	HighestAverage  []LeaderboardEntry `json:"highestAverage"`
	MostRuns        []LeaderboardEntry `json:"mostRuns"`
	BestPlusMinus   []LeaderboardEntry `json:"bestPlusMinus"`
	MostHighInnings []LeaderboardEntry `json:"mostHighInnings"`
	MostWins        []LeaderboardEntry `json:"mostWins"`
}

// ByCategory returns one category's list.
func (l Leaderboards) ByCategory(c Category) []LeaderboardEntry {
	switch c {
	case CategoryHighestAverage:
		return l.HighestAverage
	case CategoryMostRuns:
		return l.MostRuns
	case CategoryBestPlusMinus:
		return l.BestPlusMinus
	case CategoryMostHighInnings:
		return l.MostHighInnings
	case CategoryMostWins:
		return l.MostWins
	default:
		return nil
	}
}

// ComputeLeaderboards sorts the players by each category's metric, descending,
// and keeps the top LeaderboardSize. Equal metrics keep input order; there is
// no secondary key.
func ComputeLeaderboards(stats []PlayerSeasonStats) Leaderboards {
	return Leaderboards{
		HighestAverage:  rank(stats, CategoryHighestAverage),
		MostRuns:        rank(stats, CategoryMostRuns),
		BestPlusMinus:   rank(stats, CategoryBestPlusMinus),
		MostHighInnings: rank(stats, CategoryMostHighInnings),
		MostWins:        rank(stats, CategoryMostWins),
	}
}

func rank(stats []PlayerSeasonStats, c Category) []LeaderboardEntry {
	sorted := make([]PlayerSeasonStats, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.metric(sorted[i]) > c.metric(sorted[j])
	})
	if len(sorted) > LeaderboardSize {
		sorted = sorted[:LeaderboardSize]
	}

	out := make([]LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		out[i] = LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   s.PlayerID,
			PlayerName: s.PlayerName,
			TeamID:     s.TeamID,
			TeamName:   s.TeamName,
			Value:      c.metric(s),
		}
	}
	return out
}

// Averages maps player id to un-rounded season average.
func Averages(stats []PlayerSeasonStats) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(stats))
	for _, s := range stats {
		out[s.PlayerID] = s.Average()
	}
	return out
}
