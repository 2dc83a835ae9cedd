package standingsservice

import (
	"context"
	"slices"

	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake League Repo
// ------------------------

type FakeLeagueRepo struct {
	trace []string

	leagues map[uuid.UUID]*leaguedb.League
	seasons []leaguedb.Season
	teams   []leaguedb.Team
	players []leaguedb.Player
	matches []leaguedb.Match

	ListMatchesBySeasonFunc func(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.Match, error)
}

func NewFakeLeagueRepo() *FakeLeagueRepo {
	return &FakeLeagueRepo{
		trace:   []string{},
		leagues: map[uuid.UUID]*leaguedb.League{},
	}
}

func (f *FakeLeagueRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLeagueRepo) GetLeague(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*leaguedb.League, error) {
	f.record("GetLeague")
	if l, ok := f.leagues[leagueID]; ok {
		return l, nil
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) UpdateHandicapSettings(ctx context.Context, db bun.IDB, leagueID uuid.UUID, enabled bool, percent int, cadence string) error {
	f.record("UpdateHandicapSettings")
	return nil
}

func (f *FakeLeagueRepo) GetSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*leaguedb.Season, error) {
	f.record("GetSeason")
	for i := range f.seasons {
		if f.seasons[i].ID == seasonID {
			return &f.seasons[i], nil
		}
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) GetActiveSeason(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*leaguedb.Season, error) {
	f.record("GetActiveSeason")
	for i := range f.seasons {
		if f.seasons[i].LeagueID == leagueID && f.seasons[i].IsActive {
			return &f.seasons[i], nil
		}
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) ListTeams(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]leaguedb.Team, error) {
	f.record("ListTeams")
	var out []leaguedb.Team
	for _, t := range f.teams {
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *FakeLeagueRepo) ListPlayers(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]leaguedb.Player, error) {
	f.record("ListPlayers")
	return slices.Clone(f.players), nil
}

func (f *FakeLeagueRepo) GetMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*leaguedb.Match, error) {
	f.record("GetMatch")
	for i := range f.matches {
		if f.matches[i].ID == matchID {
			return &f.matches[i], nil
		}
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) ListMatchesBySeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.Match, error) {
	f.record("ListMatchesBySeason")
	if f.ListMatchesBySeasonFunc != nil {
		return f.ListMatchesBySeasonFunc(ctx, db, seasonID)
	}
	var out []leaguedb.Match
	for _, m := range f.matches {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *FakeLeagueRepo) GetLeagueIDForMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (uuid.UUID, error) {
	f.record("GetLeagueIDForMatch")
	return uuid.Nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ leaguedb.Repository = (*FakeLeagueRepo)(nil)

// ------------------------
// Fake Scoring Repo
// ------------------------

// FakeGameRepo serves the read side of the scoring repository from slices.
type FakeGameRepo struct {
	games   []scoringdb.Game
	innings []scoringdb.Inning
}

func (f *FakeGameRepo) AddGame(g scoringdomain.Game, innings []scoringdomain.Inning) {
	f.games = append(f.games, *scoringdb.GameFromDomain(g))
	for _, in := range innings {
		f.innings = append(f.innings, scoringdb.Inning{
			GameID:       g.ID,
			InningNumber: in.Number,
			Batter:       string(in.Batter),
			Runs:         in.Runs,
			IsExtra:      in.IsExtra,
		})
	}
}

func (f *FakeGameRepo) GetGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*scoringdb.Game, error) {
	return nil, scoringdb.ErrNotFound
}

func (f *FakeGameRepo) LockGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*scoringdb.Game, error) {
	return nil, scoringdb.ErrNotFound
}

func (f *FakeGameRepo) ListGamesByMatches(ctx context.Context, db bun.IDB, matchIDs []uuid.UUID) ([]scoringdb.Game, error) {
	var out []scoringdb.Game
	for _, g := range f.games {
		if slices.Contains(matchIDs, g.MatchID) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *FakeGameRepo) InsertGames(ctx context.Context, db bun.IDB, games []scoringdb.Game) error {
	return nil
}

func (f *FakeGameRepo) SetWinner(ctx context.Context, db bun.IDB, gameID uuid.UUID, winner *string) error {
	return nil
}

func (f *FakeGameRepo) SetDNP(ctx context.Context, db bun.IDB, gameID uuid.UUID, isDNP bool) error {
	return nil
}

func (f *FakeGameRepo) ReplaceInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID, innings []scoringdomain.Inning) error {
	return nil
}

func (f *FakeGameRepo) ListInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]scoringdb.Inning, error) {
	return f.ListInningsByGames(ctx, db, []uuid.UUID{gameID})
}

func (f *FakeGameRepo) ListInningsByGames(ctx context.Context, db bun.IDB, gameIDs []uuid.UUID) ([]scoringdb.Inning, error) {
	var out []scoringdb.Inning
	for _, in := range f.innings {
		if slices.Contains(gameIDs, in.GameID) {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *FakeGameRepo) DeleteEntry(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string) error {
	return nil
}

func (f *FakeGameRepo) InsertEntry(ctx context.Context, db bun.IDB, entry *scoringdb.ScoreEntry) error {
	return nil
}

func (f *FakeGameRepo) ListEntries(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]scoringdb.ScoreEntry, error) {
	return nil, nil
}

func (f *FakeGameRepo) UpdateEntryStatus(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string, status string) error {
	return nil
}

var _ scoringdb.Repository = (*FakeGameRepo)(nil)
