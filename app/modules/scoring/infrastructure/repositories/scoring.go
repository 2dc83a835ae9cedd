package scoringdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	scoringdomain "github.com/Black-And-White-Club/darts-league/app/modules/scoring/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new scoring repository.
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

func (r *Impl) GetGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*Game, error) {
	return r.getGame(ctx, r.resolveDB(db), gameID, false)
}

func (r *Impl) LockGame(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*Game, error) {
	return r.getGame(ctx, r.resolveDB(db), gameID, true)
}

func (r *Impl) getGame(ctx context.Context, db bun.IDB, gameID uuid.UUID, lock bool) (*Game, error) {
	game := new(Game)
	q := db.NewSelect().
		Model(game).
		Where("id = ?", gameID)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (r *Impl) ListGamesByMatches(ctx context.Context, db bun.IDB, matchIDs []uuid.UUID) ([]Game, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var games []Game
	err := db.NewSelect().
		Model(&games).
		Where("match_id IN (?)", bun.In(matchIDs)).
		Order("match_id ASC", "slot ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (r *Impl) InsertGames(ctx context.Context, db bun.IDB, games []Game) error {
	if len(games) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(&games).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert games: %w", err)
	}
	return nil
}

func (r *Impl) SetWinner(ctx context.Context, db bun.IDB, gameID uuid.UUID, winner *string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Game)(nil)).
		Set("winner = ?", winner).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", gameID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set winner: %w", err)
	}
	return requireRow(result)
}

func (r *Impl) SetDNP(ctx context.Context, db bun.IDB, gameID uuid.UUID, isDNP bool) error {
	db = r.resolveDB(db)
	q := db.NewUpdate().
		Model((*Game)(nil)).
		Set("is_dnp = ?", isDNP).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", gameID)
	if isDNP {
		q = q.Set("winner = NULL")
	}
	result, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set DNP: %w", err)
	}
	return requireRow(result)
}

func (r *Impl) ReplaceInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID, innings []scoringdomain.Inning) error {
	db = r.resolveDB(db)

	rows := make([]Inning, len(innings))
	for i, in := range innings {
		rows[i] = Inning{
			GameID:       gameID,
			InningNumber: in.Number,
			Batter:       string(in.Batter),
			Runs:         in.Runs,
			IsExtra:      in.IsExtra,
		}
	}

	if _, err := db.NewDelete().
		Model((*Inning)(nil)).
		Where("game_id = ?", gameID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete innings: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert innings: %w", err)
	}
	return nil
}

func (r *Impl) ListInnings(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]Inning, error) {
	return r.ListInningsByGames(ctx, db, []uuid.UUID{gameID})
}

func (r *Impl) ListInningsByGames(ctx context.Context, db bun.IDB, gameIDs []uuid.UUID) ([]Inning, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var innings []Inning
	err := db.NewSelect().
		Model(&innings).
		Where("game_id IN (?)", bun.In(gameIDs)).
		OrderExpr("game_id ASC, inning_number ASC, CASE batter WHEN 'home' THEN 0 ELSE 1 END ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list innings: %w", err)
	}
	return innings, nil
}

func (r *Impl) DeleteEntry(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string) error {
	db = r.resolveDB(db)
	_, err := db.NewDelete().
		Model((*ScoreEntry)(nil)).
		Where("game_id = ?", gameID).
		Where("side = ?", side).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete score entry: %w", err)
	}
	return nil
}

func (r *Impl) InsertEntry(ctx context.Context, db bun.IDB, entry *ScoreEntry) error {
	db = r.resolveDB(db)
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now()
	}
	if _, err := db.NewInsert().Model(entry).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert score entry: %w", err)
	}
	return nil
}

func (r *Impl) ListEntries(ctx context.Context, db bun.IDB, gameID uuid.UUID) ([]ScoreEntry, error) {
	db = r.resolveDB(db)
	var entries []ScoreEntry
	err := db.NewSelect().
		Model(&entries).
		Where("game_id = ?", gameID).
		Order("side ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list score entries: %w", err)
	}
	return entries, nil
}

func (r *Impl) UpdateEntryStatus(ctx context.Context, db bun.IDB, gameID uuid.UUID, side string, status string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*ScoreEntry)(nil)).
		Set("status = ?", status).
		Where("game_id = ?", gameID).
		Where("side = ?", side).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update score entry status: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
