package leaguedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new league repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetLeague(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*League, error) {
	db = r.resolveDB(db)
	league := new(League)
	err := db.NewSelect().
		Model(league).
		Where("id = ?", leagueID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

func (r *Impl) UpdateHandicapSettings(ctx context.Context, db bun.IDB, leagueID uuid.UUID, enabled bool, percent int, cadence string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*League)(nil)).
		Set("handicap_enabled = ?", enabled).
		Set("handicap_percent = ?", percent).
		Set("handicap_cadence = ?", cadence).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", leagueID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update handicap settings: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) GetSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*Season, error) {
	db = r.resolveDB(db)
	season := new(Season)
	err := db.NewSelect().
		Model(season).
		Where("id = ?", seasonID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return season, nil
}

func (r *Impl) GetActiveSeason(ctx context.Context, db bun.IDB, leagueID uuid.UUID) (*Season, error) {
	db = r.resolveDB(db)
	season := new(Season)
	err := db.NewSelect().
		Model(season).
		Where("league_id = ?", leagueID).
		Where("is_active = TRUE").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}
	return season, nil
}

func (r *Impl) ListTeams(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]Team, error) {
	db = r.resolveDB(db)
	var teams []Team
	err := db.NewSelect().
		Model(&teams).
		Where("league_id = ?", leagueID).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *Impl) ListPlayers(ctx context.Context, db bun.IDB, leagueID uuid.UUID) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Join("JOIN teams AS t ON t.id = p.team_id").
		Where("t.league_id = ?", leagueID).
		Order("p.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (r *Impl) GetMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (*Match, error) {
	db = r.resolveDB(db)
	match := new(Match)
	err := db.NewSelect().
		Model(match).
		Where("id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

func (r *Impl) ListMatchesBySeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]Match, error) {
	db = r.resolveDB(db)
	var matches []Match
	err := db.NewSelect().
		Model(&matches).
		Where("season_id = ?", seasonID).
		Order("scheduled_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (r *Impl) GetLeagueIDForMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) (uuid.UUID, error) {
	db = r.resolveDB(db)
	var leagueID uuid.UUID
	err := db.NewSelect().
		TableExpr("matches AS m").
		ColumnExpr("s.league_id").
		Join("JOIN seasons AS s ON s.id = m.season_id").
		Where("m.id = ?", matchID).
		Scan(ctx, &leagueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve league for match: %w", err)
	}
	return leagueID, nil
}
