package leaguemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating league directory tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS leagues (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name VARCHAR(120) NOT NULL,
					games_per_match INT NOT NULL DEFAULT 4,
					points_per_game_win INT NOT NULL DEFAULT 1,
					bonus_for_total BOOLEAN NOT NULL DEFAULT TRUE,
					extra_exclude BOOLEAN NOT NULL DEFAULT TRUE,
					blind_default_runs INT NOT NULL DEFAULT 0 CHECK (blind_default_runs BETWEEN 0 AND 9),
					handicap_enabled BOOLEAN NOT NULL DEFAULT FALSE,
					handicap_percent INT NOT NULL DEFAULT 70 CHECK (handicap_percent BETWEEN 0 AND 100),
					handicap_cadence VARCHAR(16) NOT NULL DEFAULT 'weekly'
						CHECK (handicap_cadence IN ('weekly', 'per_match', 'manual')),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create leagues table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS seasons (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					league_id UUID NOT NULL REFERENCES leagues(id),
					name VARCHAR(120) NOT NULL,
					is_active BOOLEAN NOT NULL DEFAULT FALSE,
					start_date DATE NOT NULL DEFAULT CURRENT_DATE
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_seasons_one_active
					ON seasons(league_id) WHERE is_active;
			`); err != nil {
				return fmt.Errorf("failed to create seasons table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS teams (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					league_id UUID NOT NULL REFERENCES leagues(id),
					name VARCHAR(120) NOT NULL,
					division VARCHAR(60)
				);
				CREATE INDEX IF NOT EXISTS idx_teams_league_id ON teams(league_id);

				CREATE TABLE IF NOT EXISTS players (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					team_id UUID NOT NULL REFERENCES teams(id),
					name VARCHAR(120) NOT NULL,
					status VARCHAR(16) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive'))
				);
				CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
			`); err != nil {
				return fmt.Errorf("failed to create roster tables: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS matches (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					season_id UUID NOT NULL REFERENCES seasons(id),
					home_team_id UUID NOT NULL REFERENCES teams(id),
					visitor_team_id UUID NOT NULL REFERENCES teams(id),
					handicap_percent INT CHECK (handicap_percent BETWEEN 0 AND 100),
					bonus_winner VARCHAR(8) CHECK (bonus_winner IN ('home', 'visitor')),
					scheduled_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_matches_season_id ON matches(season_id);
			`); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping league directory tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS matches;
				DROP TABLE IF EXISTS players;
				DROP TABLE IF EXISTS teams;
				DROP TABLE IF EXISTS seasons;
				DROP TABLE IF EXISTS leagues;
			`); err != nil {
				return fmt.Errorf("failed to drop league directory tables: %w", err)
			}
			return nil
		})
	})
}
