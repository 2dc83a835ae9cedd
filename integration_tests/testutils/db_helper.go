package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	leaguemigrations "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories/migrations"
	scoringmigrations "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories/migrations"
)

// RunMigrations applies every module's migrations in dependency order.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	orderedModules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"league", leaguemigrations.Migrations},
		{"scoring", scoringmigrations.Migrations},
	}

	for _, mod := range orderedModules {
		migrator := migrate.NewMigrator(db, mod.migrations,
			migrate.WithTableName(mod.name+"_migrations"),
			migrate.WithLocksTableName(mod.name+"_migration_locks"),
		)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init %s migrations: %w", mod.name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", mod.name, err)
		}
	}
	return nil
}

// dataTables are truncated between tests; migration bookkeeping is kept.
var dataTables = []string{
	"score_entries",
	"innings",
	"games",
	"matches",
	"players",
	"teams",
	"seasons",
	"leagues",
}

// TruncateTables empties every data table.
func TruncateTables(ctx context.Context, db bun.IDB) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(dataTables, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
