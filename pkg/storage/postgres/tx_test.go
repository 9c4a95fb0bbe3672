package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cardforge/pkg/domain"
	"cardforge/pkg/storage"
	"cardforge/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg := setupTestDB(t)

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_TxVisibility(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	committed := domain.BatchID(uuid.New())
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreCards(ctx, committed, testCard("4111111111111111"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	cards, err := pg.BatchCards(ctx, committed)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	rolledBack := domain.BatchID(uuid.New())
	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreCards(ctx, rolledBack, testCard("4111111111111111"))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	cards, err = pg.BatchCards(ctx, rolledBack)
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	ok := domain.BatchID(uuid.New())
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreCards(ctx, ok, testCard("5555555555554444"), testCard("4111111111111111"))

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	cards, err := pg.BatchCards(ctx, ok)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	failed := domain.BatchID(uuid.New())
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreCards(ctx, failed, testCard("4111111111111111"))

		return errors.New("boom")
	})
	require.Error(t, err)

	cards, err = pg.BatchCards(ctx, failed)
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestPgSQL_WithTx_RollsBackOnPanic(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	batch := domain.BatchID(uuid.New())
	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.StoreCards(ctx, batch, testCard("4111111111111111"))

			panic("boom")
		})
	})

	cards, err := pg.BatchCards(ctx, batch)
	require.NoError(t, err)
	require.Empty(t, cards)
}
