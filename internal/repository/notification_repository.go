package repository

import (
	"context"

	"shoppos/internal/domain/model"
)

// 店舗ごとの通知（追記のみ、既読フラグだけ更新する）
type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) error
	ListByShopID(ctx context.Context, shopID string, limit int) ([]model.Notification, error)

	// 未読を全部既読にして、更新件数を返す
	MarkAllRead(ctx context.Context, shopID string) (int64, error)
}
