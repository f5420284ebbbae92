package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。すべて店舗(shop_id)で絞る。
type ProductRepository interface {
	ListByShopID(ctx context.Context, shopID string) ([]model.Product, error)
	FindByID(ctx context.Context, shopID string, productID string) (model.Product, error)

	// 行ロック付きで取得（トランザクション内で使う）
	FindByIDForUpdate(ctx context.Context, shopID string, productID string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, shopID string, productID string) error
}
