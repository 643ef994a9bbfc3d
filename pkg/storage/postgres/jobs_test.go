package postgres_test

import (
	"context"
	"database/sql"
	"outreach/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type testJobArgs struct {
	Key string `json:"key"`
}

func (testJobArgs) Kind() string { return "test_job" }

type rolledBackJobArgs struct{}

func (rolledBackJobArgs) Kind() string { return "rolled_back_job" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	versions := migrator.AllVersions()
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: versions[len(versions)-1].Version,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	t.Run("inside transaction", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		added, err := txStorage.AddJob(ctx, testJobArgs{Key: "tx"}, nil)
		require.NoError(t, err)
		require.True(t, added)

		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
			ctx,
			t,
			txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
			&testJobArgs{},
			nil,
		)
	})

	t.Run("rolled back transaction", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)

		added, err := txStorage.AddJob(ctx, rolledBackJobArgs{}, nil)
		require.NoError(t, err)
		require.True(t, added)
		require.NoError(t, txStorage.Rollback())

		rivertest.RequireNotInserted[*riverdatabasesql.Driver](
			ctx,
			t,
			riverdatabasesql.New(pg.DB.(*sql.DB)),
			&rolledBackJobArgs{},
			nil,
		)
	})

	t.Run("outside transaction", func(t *testing.T) {
		added, err := pg.AddJob(ctx, testJobArgs{Key: "db"}, nil)
		require.NoError(t, err)
		require.True(t, added)

		rivertest.RequireInserted[*riverdatabasesql.Driver](
			ctx,
			t,
			riverdatabasesql.New(pg.DB.(*sql.DB)),
			&testJobArgs{},
			nil,
		)
	})

	t.Run("unique duplicate is skipped", func(t *testing.T) {
		opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

		added, err := pg.AddJob(ctx, testJobArgs{Key: "unique"}, opts)
		require.NoError(t, err)
		require.True(t, added)

		added, err = pg.AddJob(ctx, testJobArgs{Key: "unique"}, opts)
		require.NoError(t, err)
		require.False(t, added)
	})
}
