package repository

import (
	"context"

	"shoppos/internal/domain/model"
)

type ShopRepository interface {
	Create(ctx context.Context, shop model.Shop) error
	FindByID(ctx context.Context, shopID string) (model.Shop, error)
	Update(ctx context.Context, shop model.Shop) error
}
