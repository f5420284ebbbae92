package usecase

import (
	"context"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"
)

type NotificationUsecase struct {
	tx repo.TransactionManager
}

func NewNotificationUsecase(tx repo.TransactionManager) *NotificationUsecase {
	return &NotificationUsecase{tx: tx}
}

type MarkReadOutput struct {
	Updated int64 `json:"updated"`
}

// 新しい順
func (u *NotificationUsecase) List(ctx context.Context, shopID string, p model.Principal, limit int) ([]model.Notification, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return nil, err
	}

	var out []model.Notification
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.Notifications().ListByShopID(ctx, shopID, limit)
		if err != nil {
			return dbError(err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *NotificationUsecase) MarkAllRead(ctx context.Context, shopID string, p model.Principal) (MarkReadOutput, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return MarkReadOutput{}, err
	}

	var out MarkReadOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		n, err := r.Notifications().MarkAllRead(ctx, shopID)
		if err != nil {
			return dbError(err)
		}
		out.Updated = n
		return nil
	})
	if err != nil {
		return MarkReadOutput{}, err
	}
	return out, nil
}
