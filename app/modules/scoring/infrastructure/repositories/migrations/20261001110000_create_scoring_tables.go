package scoringmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating games, innings and score_entries tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS games (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					match_id UUID NOT NULL REFERENCES matches(id),
					slot INT NOT NULL,
					home_player_id UUID REFERENCES players(id),
					home_is_blind BOOLEAN NOT NULL DEFAULT FALSE,
					visitor_player_id UUID REFERENCES players(id),
					visitor_is_blind BOOLEAN NOT NULL DEFAULT FALSE,
					handicap_percent INT CHECK (handicap_percent BETWEEN 0 AND 100),
					is_dnp BOOLEAN NOT NULL DEFAULT FALSE,
					winner VARCHAR(8) CHECK (winner IN ('home', 'visitor', 'tie')),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (match_id, slot),
					CHECK (home_is_blind = (home_player_id IS NULL)),
					CHECK (visitor_is_blind = (visitor_player_id IS NULL)),
					CHECK (NOT (is_dnp AND winner IS NOT NULL))
				);
			`); err != nil {
				return fmt.Errorf("failed to create games table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS innings (
					game_id UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
					inning_number INT NOT NULL CHECK (inning_number >= 1),
					batter VARCHAR(8) NOT NULL CHECK (batter IN ('home', 'visitor')),
					runs INT NOT NULL CHECK (runs BETWEEN 0 AND 9),
					is_extra BOOLEAN NOT NULL DEFAULT FALSE,
					PRIMARY KEY (game_id, inning_number, batter)
				);
			`); err != nil {
				return fmt.Errorf("failed to create innings table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS score_entries (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					game_id UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
					side VARCHAR(8) NOT NULL CHECK (side IN ('home', 'visitor')),
					submitted_by VARCHAR(120) NOT NULL,
					innings JSONB NOT NULL DEFAULT '[]'::jsonb,
					status VARCHAR(16) NOT NULL
						CHECK (status IN ('pending', 'confirmed', 'discrepancy', 'resolved')),
					submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (game_id, side)
				);
			`); err != nil {
				return fmt.Errorf("failed to create score_entries table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scoring tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS score_entries;
				DROP TABLE IF EXISTS innings;
				DROP TABLE IF EXISTS games;
			`); err != nil {
				return fmt.Errorf("failed to drop scoring tables: %w", err)
			}
			return nil
		})
	})
}
