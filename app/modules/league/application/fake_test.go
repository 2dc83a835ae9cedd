package leagueservice

import (
	"context"

	leaguedb "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake League Repo
// ------------------------

type FakeLeagueRepo struct {
	trace []string

	GetLeagueFunc              func(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*leaguedb.League, error)
	UpdateHandicapSettingsFunc func(ctx context.Context, db bun.IDB, leagueID uuid.UUID, enabled bool, percent int, cadence string) error
}

func NewFakeLeagueRepo() *FakeLeagueRepo {
	return &FakeLeagueRepo{trace: []string{}}
}

func (f *FakeLeagueRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLeagueRepo) GetLeague(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*leaguedb.League, error) {
	f.record("GetLeague")
	if f.GetLeagueFunc != nil {
		return f.GetLeagueFunc(ctx, db, leagueID)
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) UpdateHandicapSettings(ctx context.Context, db bun.IDB, leagueID uuid.UUID, enabled bool, percent int, cadence string) error {
	f.record("UpdateHandicapSettings")
	if f.UpdateHandicapSettingsFunc != nil {
		return f.UpdateHandicapSettingsFunc(ctx, db, leagueID, enabled, percent, cadence)
	}
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
	return uuid.Nil, leaguedb.ErrNotFound
}

// --- Accessors for assertions ---

func (f *FakeLeagueRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ leaguedb.Repository = (*FakeLeagueRepo)(nil)
