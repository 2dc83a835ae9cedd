package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/Black-And-White-Club/darts-league/app/observability"
	"github.com/Black-And-White-Club/darts-league/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// TestEnvironment holds the containers and connections shared by one test package.
type TestEnvironment struct {
	Ctx           context.Context
	PgContainer   *postgres.PostgresContainer
	NatsContainer *nats.NATSContainer
	DB            *bun.DB
	NatsURL       string
	Observability observability.Observability
}

// Option configures a TestEnvironment.
type Option func(*options)

type options struct {
	withNATS bool
}

// WithNATS also starts a NATS container.
func WithNATS() Option {
	return func(o *options) { o.withNATS = true }
}

// NewTestEnvironment starts Postgres, runs every module migration and
// optionally starts NATS.
func NewTestEnvironment(ctx context.Context, opts ...Option) (*TestEnvironment, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB, err := sql.Open("pgx", pgConnStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	env := &TestEnvironment{
		Ctx:           ctx,
		PgContainer:   pgContainer,
		DB:            db,
		Observability: observability.NewNoop(),
	}

	if o.withNATS {
		natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
		if err != nil {
			env.Cleanup()
			return nil, fmt.Errorf("failed to setup nats container: %w", err)
		}
		env.NatsContainer = natsContainer
		env.NatsURL = natsURL
	}

	return env, nil
}

// Reset empties every table between tests.
func (env *TestEnvironment) Reset() error {
	return TruncateTables(env.Ctx, env.DB)
}

// Cleanup closes connections and terminates containers.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	if env.NatsContainer != nil {
		if err := env.NatsContainer.Terminate(env.Ctx); err != nil {
			log.Printf("Failed to terminate NATS container: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(env.Ctx); err != nil {
			log.Printf("Failed to terminate postgres container: %v", err)
		}
	}
}
