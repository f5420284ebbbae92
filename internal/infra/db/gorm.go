package db

import (
	"strings"

	"shoppos/internal/config"
	"shoppos/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	default:
		return OpenPostgres(cfg.PostgresDSN())
	}
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), gormConfig())
}

// OpenSQLite は開発・テスト用。書き込みは1本の接続に寄せる。
// 接続を張り直してもFKが効くようにDSNで指定する
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on&_busy_timeout=5000"
	}
	gdb, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return gdb, nil
}

// Migrate は全テーブルを作る
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Shop{},
		&model.User{},
		&model.Product{},
		&model.InventoryAdjustment{},
		&model.Order{},
		&model.OrderItem{},
		&model.Invoice{},
		&model.Notification{},
	)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// ユニーク違反などをgorm.ErrDuplicatedKeyに寄せる
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}
