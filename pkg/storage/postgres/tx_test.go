package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"outreach/pkg/domain"
	"outreach/pkg/storage"
	"outreach/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func countCampaigns(t *testing.T, db *sql.DB, userID domain.UserID) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM campaigns WHERE user_id = $1`, uuid.UUID(userID).String())
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Transactions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	t.Run("begin twice", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		inner, ok := txStorage.(*postgres.PgSQL)
		require.True(t, ok)
		_, isTx := inner.DB.(*sql.Tx)
		require.True(t, isTx)

		_, err = inner.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("commit and rollback outside tx", func(t *testing.T) {
		require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
	})

	t.Run("commit persists", func(t *testing.T) {
		userID := domain.UserID(uuid.New())

		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = txStorage.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "committed"})
		require.NoError(t, err)
		require.Equal(t, 0, countCampaigns(t, db, userID))

		require.NoError(t, txStorage.Commit())
		require.Equal(t, 1, countCampaigns(t, db, userID))
	})

	t.Run("rollback discards", func(t *testing.T) {
		userID := domain.UserID(uuid.New())

		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = txStorage.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "discarded"})
		require.NoError(t, err)

		require.NoError(t, txStorage.Rollback())
		require.Equal(t, 0, countCampaigns(t, db, userID))
	})

	t.Run("with tx", func(t *testing.T) {
		userID := domain.UserID(uuid.New())

		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "kept"})

			return err
		})
		require.NoError(t, err)
		require.Equal(t, 1, countCampaigns(t, db, userID))

		boom := errors.New("boom")
		err = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "dropped"})

			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, countCampaigns(t, db, userID))
	})
}
