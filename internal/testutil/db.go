package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"shoppos/internal/infra/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MustOpenDB はテスト用DBを返す。
// TEST_DATABASE_URL があればPostgres、無ければ一時ディレクトリのsqlite（1接続）。
// ctxキャンセルで接続が捨てられても消えないよう :memory: は使わない。
// Postgresではテーブルを共有するので、テストは毎回新しい店舗で動かすこと。
func MustOpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	var (
		gdb *gorm.DB
		err error
	)
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		gdb, err = db.OpenPostgres(dsn)
	} else {
		gdb, err = db.OpenSQLite(filepath.Join(t.TempDir(), "shoppos_test.db"))
	}
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func IsPostgres() bool {
	return os.Getenv("TEST_DATABASE_URL") != ""
}
