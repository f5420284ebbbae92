package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, shopID string, orderID string) (model.Order, error) {
	if !isUUID(orderID, shopID) {
		return model.Order{}, repo.ErrNotFound
	}
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("id = ? AND shop_id = ?", orderID, shopID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByShopID(ctx context.Context, shopID string, page int, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("shop_id = ?", shopID).
		Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	var items []model.Order
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("shop_id = ?", shopID).
		Order("date desc").Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return items, total, nil
}

// 明細は別で保存するのでassociationは書かない
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&order).Error
}

func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
