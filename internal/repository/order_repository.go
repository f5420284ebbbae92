package repository

import (
	"context"

	"shoppos/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, shopID string, orderID string) (model.Order, error)

	// 新しい順（明細つき）
	ListByShopID(ctx context.Context, shopID string, page int, limit int) ([]model.Order, int64, error)

	// ヘッダのみ保存。明細はOrderItemRepositoryで保存する
	Create(ctx context.Context, order model.Order) error
}
