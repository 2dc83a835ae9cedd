package scoringservice

import (
	"context"
	"sort"
	"sync"

	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Scoring Repo
// ------------------------

// FakeScoringRepo keeps games, ledgers and entries in memory so multi-step
// flows can be exercised end to end. The Func fields override individual
// methods for error injection.
type FakeScoringRepo struct {
	mu      sync.Mutex
	trace   []string
	games   map[uuid.UUID]*scoringdb.Game
	innings map[uuid.UUID][]scoringdb.Inning
	entries map[uuid.UUID]map[string]*scoringdb.ScoreEntry

	ListEntriesFunc    func(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]scoringdb.ScoreEntry, error)
	ReplaceInningsFunc func(ctx context.Context, db bun.IDB, gameID uuid.UUID, innings []scoringdomain.Inning) error
}

func NewFakeScoringRepo() *FakeScoringRepo {
	return &FakeScoringRepo{
		trace:   []string{},
		games:   map[uuid.UUID]*scoringdb.Game{},
		innings: map[uuid.UUID][]scoringdb.Inning{},
		entries: map[uuid.UUID]map[string]*scoringdb.ScoreEntry{},
	}
}

func (f *FakeScoringRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// AddGame seeds a game.
func (f *FakeScoringRepo) AddGame(g scoringdomain.Game) {
	f.games[g.ID] = scoringdb.GameFromDomain(g)
}

func (f *FakeScoringRepo) GetGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*scoringdb.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetGame")
	return f.game(gameID)
}

func (f *FakeScoringRepo) LockGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*scoringdb.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LockGame")
	return f.game(gameID)
}

func (f *FakeScoringRepo) game(gameID uuid.UUID) (*scoringdb.Game, error) {
	g, ok := f.games[gameID]
	if !ok {
		return nil, scoringdb.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *FakeScoringRepo) ListGamesByMatches(ctx context.Context, db bun.IDB, matchIDs []uuid.UUID) ([]scoringdb.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListGamesByMatches")
	wanted := map[uuid.UUID]bool{}
	for _, id := range matchIDs {
		wanted[id] = true
	}
	var out []scoringdb.Game
	for _, g := range f.games {
		if wanted[g.MatchID] {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}

func (f *FakeScoringRepo) InsertGames(ctx context.Context, db bun.IDB, games []scoringdb.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertGames")
	for i := range games {
		g := games[i]
		f.games[g.ID] = &g
	}
	return nil
}

func (f *FakeScoringRepo) SetWinner(ctx context.Context, db bun.IDB, gameID uuid.UUID, winner *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetWinner")
	g, ok := f.games[gameID]
	if !ok {
		return scoringdb.ErrNotFound
	}
	g.Winner = winner
	return nil
}

func (f *FakeScoringRepo) SetDNP(ctx context.Context, db bun.IDB, gameID uuid.UUID, isDNP bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetDNP")
	g, ok := f.games[gameID]
	if !ok {
		return scoringdb.ErrNotFound
	}
	g.IsDNP = isDNP
	if isDNP {
		g.Winner = nil
	}
	return nil
}

func (f *FakeScoringRepo) ReplaceInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID, innings []scoringdomain.Inning) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ReplaceInnings")
	if f.ReplaceInningsFunc != nil {
		return f.ReplaceInningsFunc(ctx, db, gameID, innings)
	}
	rows := make([]scoringdb.Inning, len(innings))
	for i, in := range innings {
		rows[i] = scoringdb.Inning{GameID: gameID, InningNumber: in.Number, Batter: string(in.Batter), Runs: in.Runs, IsExtra: in.IsExtra}
	}
	f.innings[gameID] = rows
	return nil
}

func (f *FakeScoringRepo) ListInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]scoringdb.Inning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListInnings")
	return append([]scoringdb.Inning(nil), f.innings[gameID]...), nil
}

func (f *FakeScoringRepo) ListInningsByGames(ctx context.Context, db bun.IDB, gameIDs []uuid.UUID) ([]scoringdb.Inning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListInningsByGames")
	var out []scoringdb.Inning
	for _, id := range gameIDs {
		out = append(out, f.innings[id]...)
	}
	return out, nil
}

func (f *FakeScoringRepo) DeleteEntry(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteEntry")
	delete(f.entries[gameID], side)
	return nil
}

func (f *FakeScoringRepo) InsertEntry(ctx context.Context, db bun.IDB, entry *scoringdb.ScoreEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertEntry")
	if f.entries[entry.GameID] == nil {
		f.entries[entry.GameID] = map[string]*scoringdb.ScoreEntry{}
	}
	cp := *entry
	f.entries[entry.GameID][entry.Side] = &cp
	return nil
}

func (f *FakeScoringRepo) ListEntries(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]scoringdb.ScoreEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListEntries")
	if f.ListEntriesFunc != nil {
		return f.ListEntriesFunc(ctx, db, gameID)
	}
	var out []scoringdb.ScoreEntry
	for _, side := range []string{"home", "visitor"} {
		if e, ok := f.entries[gameID][side]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *FakeScoringRepo) UpdateEntryStatus(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateEntryStatus")
	e, ok := f.entries[gameID][side]
	if !ok {
		return scoringdb.ErrNotFound
	}
	e.Status = status
	return nil
}

// --- Accessors for assertions ---

func (f *FakeScoringRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoringRepo) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = []string{}
}

func (f *FakeScoringRepo) StoredGame(gameID uuid.UUID) scoringdb.Game {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.games[gameID]
}

func (f *FakeScoringRepo) Ledger(gameID uuid.UUID) []scoringdomain.Inning {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]scoringdomain.Inning, 0, len(f.innings[gameID]))
	for i := range f.innings[gameID] {
		out = append(out, f.innings[gameID][i].ToDomain())
	}
	return out
}

func (f *FakeScoringRepo) EntryCount(gameID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries[gameID])
}

var _ scoringdb.Repository = (*FakeScoringRepo)(nil)

// ------------------------
// Fake League Repo
// ------------------------

type FakeLeagueRepo struct {
	trace []string

	leagues      map[uuid.UUID]*leaguedb.League
	matchLeagues map[uuid.UUID]uuid.UUID
}

func NewFakeLeagueRepo() *FakeLeagueRepo {
	return &FakeLeagueRepo{
		trace:        []string{},
		leagues:      map[uuid.UUID]*leaguedb.League{},
		matchLeagues: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *FakeLeagueRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLeagueRepo) AddLeague(row *leaguedb.League) {
	f.leagues[row.ID] = row
}

func (f *FakeLeagueRepo) AddMatch(matchID, leagueID uuid.UUID) {
	f.matchLeagues[matchID] = leagueID
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
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) GetActiveSeason(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*leaguedb.Season, error) {
	f.record("GetActiveSeason")
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) ListTeams(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]leaguedb.Team, error) {
	f.record("ListTeams")
	return nil, nil
}

func (f *FakeLeagueRepo) ListPlayers(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]leaguedb.Player, error) {
	f.record("ListPlayers")
	return nil, nil
}

func (f *FakeLeagueRepo) GetMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*leaguedb.Match, error) {
	f.record("GetMatch")
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) ListMatchesBySeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.Match, error) {
	f.record("ListMatchesBySeason")
	return nil, nil
}

func (f *FakeLeagueRepo) GetLeagueIDForMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (uuid.UUID, error) {
	f.record("GetLeagueIDForMatch")
	if id, ok := f.matchLeagues[matchID]; ok {
		return id, nil
	}
	return uuid.Nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ leaguedb.Repository = (*FakeLeagueRepo)(nil)

// ------------------------
// Fake Event Bus
// ------------------------

type FakeEventBus struct {
	mu     sync.Mutex
	topics []string

	PublishFunc func(topic string, msgs ...*message.Message) error
}

func (f *FakeEventBus) Publish(topic string, msgs ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishFunc != nil {
		if err := f.PublishFunc(topic, msgs...); err != nil {
			return err
		}
	}
	f.topics = append(f.topics, topic)
	return nil
}

func (f *FakeEventBus) Close() error { return nil }

func (f *FakeEventBus) Topics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.topics...)
}
