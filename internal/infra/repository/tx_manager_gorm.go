package repository

import (
	"context"
	"errors"
	"fmt"

	repo "shoppos/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// 同時実行で負けたときのやり直し回数
const DefaultMaxTxRetries = 3

type txReposGorm struct {
	products      repo.ProductRepository
	inventory     repo.InventoryRepository
	orders        repo.OrderRepository
	orderItems    repo.OrderItemRepository
	invoices      repo.InvoiceRepository
	notifications repo.NotificationRepository
	shops         repo.ShopRepository
	users         repo.UserRepository
	dashboard     repo.DashboardRepository
}

func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository        { return r.inventory }
func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository       { return r.orderItems }
func (r *txReposGorm) Invoices() repo.InvoiceRepository           { return r.invoices }
func (r *txReposGorm) Notifications() repo.NotificationRepository { return r.notifications }
func (r *txReposGorm) Shops() repo.ShopRepository                 { return r.shops }
func (r *txReposGorm) Users() repo.UserRepository                 { return r.users }
func (r *txReposGorm) Dashboard() repo.DashboardRepository         { return r.dashboard }

// NewGormRepos は db（txでもよい）を持ったrepo一式を作る
func NewGormRepos(db *gorm.DB) repo.TxRepos {
	return &txReposGorm{
		products:      NewProductGormRepository(db),
		inventory:     NewInventoryGormRepository(db),
		orders:        NewOrderGormRepository(db),
		orderItems:    NewOrderItemGormRepository(db),
		invoices:      NewInvoiceGormRepository(db),
		notifications: NewNotificationGormRepository(db),
		shops:         NewShopGormRepository(db),
		users:         NewUserGormRepository(db),
		dashboard:     NewDashboardGormRepository(db),
	}
}

type TxManagerGorm struct {
	db         *gorm.DB
	maxRetries int
}

func NewTxManagerGorm(db *gorm.DB, maxRetries int) *TxManagerGorm {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxTxRetries
	}
	return &TxManagerGorm{db: db, maxRetries: maxRetries}
}

// fnは1回のtxで全部成功するか、全部rollbackされる。
// シリアライズ失敗・デッドロックのときだけfnを最初からやり直す。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	var lastErr error
	for attempt := 0; attempt < tm.maxRetries; attempt++ {
		lastErr = tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			//repoはtxを持ったDBで作り直す
			return fn(NewGormRepos(tx))
		})
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) || ctx.Err() != nil {
			return lastErr
		}
	}
	return fmt.Errorf("%w: %w", repo.ErrConflict, lastErr)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}
