package repository_test

import (
	"context"
	"errors"
	"testing"

	"shoppos/internal/domain/model"
	infraRepo "shoppos/internal/infra/repository"
	repo "shoppos/internal/repository"
	"shoppos/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_RetriesSerializationFailure(t *testing.T) {
	gdb := testutil.MustOpenDB(t)
	tm := infraRepo.NewTxManagerGorm(gdb, 3)

	calls := 0
	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestTxManager_ConflictAfterMaxRetries(t *testing.T) {
	gdb := testutil.MustOpenDB(t)
	tm := infraRepo.NewTxManagerGorm(gdb, 3)

	tests := []error{
		&pgconn.PgError{Code: "40P01"},
		sqlite3.Error{Code: sqlite3.ErrBusy},
	}
	for _, cause := range tests {
		calls := 0
		err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
			calls++
			return cause
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, repo.ErrConflict)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 3, calls)
	}
}

func TestTxManager_NoRetryForOtherErrors(t *testing.T) {
	gdb := testutil.MustOpenDB(t)
	tm := infraRepo.NewTxManagerGorm(gdb, 3)
	boom := errors.New("boom")

	calls := 0
	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repo.ErrConflict)
	assert.Equal(t, 1, calls)

	// 一意制約違反（23505）もやり直さない
	calls = 0
	err = tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		calls++
		return &pgconn.PgError{Code: "23505"}
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

// fnがエラーなら書いたものは全部戻る
func TestTxManager_RollbackOnError(t *testing.T) {
	gdb := testutil.MustOpenDB(t)
	shop, _ := testutil.MustCreateShop(t, gdb, "Store")
	p := testutil.MustCreateProduct(t, gdb, shop.ID, testutil.ProductSeed{Name: "Tea", Price: 1, Cost: 1, Stock: 10})
	tm := infraRepo.NewTxManagerGorm(gdb, 3)

	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		ok, err := r.Inventory().DecreaseStockIfEnough(context.Background(), shop.ID, p.ID, 4)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, r.Notifications().Create(context.Background(), model.Notification{
			ID: uuid.NewString(), ShopID: shop.ID, Message: "x",
		}))
		return errors.New("abort")
	})
	require.Error(t, err)

	assert.Equal(t, int64(10), testutil.MustGetProduct(t, gdb, p.ID).Stock)
	assert.Equal(t, int64(0), testutil.MustCount(t, gdb, shop.ID).Notifications)
}

func TestTxManager_CanceledContextStopsRetry(t *testing.T) {
	gdb := testutil.MustOpenDB(t)
	tm := infraRepo.NewTxManagerGorm(gdb, 3)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := tm.WithinTx(ctx, func(r repo.TxRepos) error {
		calls++
		cancel()
		return &pgconn.PgError{Code: "40001"}
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrConflict)
	assert.Equal(t, 1, calls)
}
