package scoringmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the scoring module migrations.
var Migrations = migrate.NewMigrations()
