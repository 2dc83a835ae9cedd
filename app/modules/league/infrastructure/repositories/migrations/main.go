package leaguemigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the league directory migrations.
var Migrations = migrate.NewMigrations()
