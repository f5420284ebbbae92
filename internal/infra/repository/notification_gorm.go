package repository

import (
	"context"

	"shoppos/internal/domain/model"

	"gorm.io/gorm"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(ctx context.Context, n model.Notification) error {
	return r.db.WithContext(ctx).Create(&n).Error
}

// 新しい順
func (r *NotificationGormRepository) ListByShopID(ctx context.Context, shopID string, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var items []model.Notification
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Notification{}, err
	}
	return items, nil
}

func (r *NotificationGormRepository) MarkAllRead(ctx context.Context, shopID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("shop_id = ? AND is_read = ?", shopID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
