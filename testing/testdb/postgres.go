package testdb

import (
	"context"
	"sync"
	"testing"

	"tutorhub/internal/db"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
)

var (
	sharedContainer *PostgresContainer
	sharedOnce      sync.Once
)

// PostgresContainer wraps the postgres testcontainer
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DB        *bun.DB
	DSN       string
}

// SetupSharedPostgres starts one PostgreSQL container per test binary and
// connects to it through the same driver the services use. Skipped in
// -short mode.
//
// Tests using the shared container cannot run in parallel.
//
// Usage:
//
//	func TestRepository(t *testing.T) {
//	    pg := testdb.SetupSharedPostgres(t)
//	    defer pg.Cleanup(t)
//
//	    pg.RunMigrations(t, (*tutor.Tutor)(nil))
//
//	    t.Run("Create", func(t *testing.T) {
//	        testdb.CleanupTables(t, pg.DB, "tutors")
//	        // ...
//	    })
//	}
func SetupSharedPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}

	sharedOnce.Do(func() {
		ctx := context.Background()
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("tutorhub"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2),
			),
		)
		require.NoError(t, err)

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)

		database := db.NewWithDSN(connStr)
		require.NoError(t, database.PingContext(ctx))

		sharedContainer = &PostgresContainer{
			Container: pgContainer,
			DB:        database,
			DSN:       connStr,
		}
	})

	require.NotNil(t, sharedContainer, "postgres container failed to start")
	return sharedContainer
}

func (pc *PostgresContainer) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if pc.DB != nil {
		pc.DB.Close()
	}

	if pc.Container != nil {
		if err := pc.Container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
}

// RunMigrations creates the tables for models with the services' own
// migration runner.
func (pc *PostgresContainer) RunMigrations(t *testing.T, models ...interface{}) {
	t.Helper()
	require.NoError(t, db.RunMigrations(context.Background(), pc.DB, models...), "failed to create tables")
}

func CleanupTables(t *testing.T, db *bun.DB, tables ...string) {
	t.Helper()

	ctx := context.Background()

	for _, table := range tables {
		_, err := db.ExecContext(ctx, "TRUNCATE "+table+" RESTART IDENTITY CASCADE")
		require.NoError(t, err, "failed to truncate table: %s", table)
	}
}
