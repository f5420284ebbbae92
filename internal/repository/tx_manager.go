package repository

import (
	"context"
	"errors"
)

// 同時更新で負けた（リトライしても通らなかった）
var ErrConflict = errors.New("concurrent modification")

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Invoices() InvoiceRepository
	Notifications() NotificationRepository
	Shops() ShopRepository
	Users() UserRepository
	Dashboard() DashboardRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがエラーを返したら全部rollbackする。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
