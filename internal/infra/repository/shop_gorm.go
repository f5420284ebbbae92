package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) Create(ctx context.Context, shop model.Shop) error {
	return r.db.WithContext(ctx).Create(&shop).Error
}

func (r *ShopGormRepository) FindByID(ctx context.Context, shopID string) (model.Shop, error) {
	if !isUUID(shopID) {
		return model.Shop{}, repo.ErrNotFound
	}
	var s model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", shopID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

// 店舗名と住所だけ更新
func (r *ShopGormRepository) Update(ctx context.Context, shop model.Shop) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", shop.ID).
		Updates(map[string]interface{}{
			"name":    shop.Name,
			"address": shop.Address,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
