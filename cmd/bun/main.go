package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Black-And-White-Club/darts-league/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	leaguemigrations "github.com/Black-And-White-Club/darts-league/app/modules/league/infrastructure/repositories/migrations"
	scoringmigrations "github.com/Black-And-White-Club/darts-league/app/modules/scoring/infrastructure/repositories/migrations"
)

// moduleMigrator is one module's migrator. Modules are migrated in slice
// order and rolled back in reverse, since scoring references league tables.
type moduleMigrator struct {
	name     string
	migrator *migrate.Migrator
}

func main() {
	var (
		db        *bun.DB
		migrators []moduleMigrator
	)

	cliApp := &cli.App{
		Name:  "bun",
		Usage: "league and scoring schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "Path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		// only the database settings are used here
		Before: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
			db = bun.NewDB(pgdb, pgdialect.New())

			migrators = []moduleMigrator{
				{name: "league", migrator: newMigrator(db, "league", leaguemigrations.Migrations)},
				{name: "scoring", migrator: newMigrator(db, "scoring", scoringmigrations.Migrations)},
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if db != nil {
				return db.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			newMultiModuleDBCommand(func() []moduleMigrator { return migrators }),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newMigrator keeps each module's bookkeeping in its own tables.
func newMigrator(db *bun.DB, module string, migrations *migrate.Migrations) *migrate.Migrator {
	return migrate.NewMigrator(db, migrations,
		migrate.WithTableName(module+"_migrations"),
		migrate.WithLocksTableName(module+"_migration_locks"),
	)
}

func findMigrator(migrators []moduleMigrator, name string) (*migrate.Migrator, error) {
	for _, m := range migrators {
		if m.name == name {
			return m.migrator, nil
		}
	}
	return nil, fmt.Errorf("invalid module name: %s", name)
}

// forEach runs fn over the modules in migration order, or in reverse when
// reverse is set.
func forEach(modules []moduleMigrator, reverse bool, fn func(moduleMigrator) error) error {
	for i := range modules {
		m := modules[i]
		if reverse {
			m = modules[len(modules)-1-i]
		}
		if err := fn(m); err != nil {
			return fmt.Errorf("module %s: %w", m.name, err)
		}
	}
	return nil
}

func newMultiModuleDBCommand(modules func() []moduleMigrator) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					return forEach(modules(), false, func(m moduleMigrator) error {
						fmt.Fprintf(c.App.Writer, "%s: init\n", m.name)
						return m.migrator.Init(c.Context)
					})
				},
			},
			{
				Name:  "migrate",
				Usage: "apply pending migrations",
				Action: func(c *cli.Context) error {
					return forEach(modules(), false, func(m moduleMigrator) (err error) {
						if err := m.migrator.Lock(c.Context); err != nil {
							return err
						}
						defer func() {
							if unlockErr := m.migrator.Unlock(c.Context); err == nil {
								err = unlockErr
							}
						}()

						group, err := m.migrator.Migrate(c.Context)
						if err != nil {
							return err
						}
						reportGroup(c, m.name, "migrated to", group)
						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "roll back the last migration group of every module",
				Action: func(c *cli.Context) error {
					return forEach(modules(), true, func(m moduleMigrator) error {
						group, err := m.migrator.Rollback(c.Context)
						if err != nil {
							return err
						}
						reportGroup(c, m.name, "rolled back", group)
						return nil
					})
				},
			},
			{
				Name:      "create_go",
				Usage:     "create a Go migration for one module",
				ArgsUsage: "<league|scoring> <name words...>",
				Action: func(c *cli.Context) error {
					migrator, err := findMigrator(modules(), c.Args().First())
					if err != nil {
						return err
					}
					mf, err := migrator.CreateGoMigration(c.Context, strings.Join(c.Args().Tail(), "_"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s: created %s (%s)\n", c.Args().First(), mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					return forEach(modules(), false, func(m moduleMigrator) error {
						ms, err := m.migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "%s:\n  applied:   %s\n  unapplied: %s\n", m.name, ms.Applied(), ms.Unapplied())
						return nil
					})
				},
			},
		},
	}
}

func reportGroup(c *cli.Context, module, verb string, group *migrate.MigrationGroup) {
	if group.IsZero() {
		fmt.Fprintf(c.App.Writer, "%s: nothing to do\n", module)
		return
	}
	fmt.Fprintf(c.App.Writer, "%s: %s %s\n", module, verb, group)
}
