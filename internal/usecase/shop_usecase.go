package usecase

import (
	"context"
	"errors"
	"strings"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"
)

type ShopUsecase struct {
	tx repo.TransactionManager
}

func NewShopUsecase(tx repo.TransactionManager) *ShopUsecase {
	return &ShopUsecase{tx: tx}
}

type UpdateShopInput struct {
	Name    *string
	Address *string
}

func (u *ShopUsecase) Get(ctx context.Context, shopID string, p model.Principal) (model.Shop, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return model.Shop{}, err
	}

	var out model.Shop
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := r.Shops().FindByID(ctx, shopID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("shop not found")
		}
		if err != nil {
			return dbError(err)
		}
		out = s
		return nil
	})
	if err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

// 店舗名・住所の変更はオーナーのみ（請求書のヘッダに出る）
func (u *ShopUsecase) Update(ctx context.Context, shopID string, p model.Principal, in UpdateShopInput) (model.Shop, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return model.Shop{}, err
	}
	if !p.IsOwner() {
		return model.Shop{}, ownerOnly("only owners can update the shop")
	}
	if in.Name == nil && in.Address == nil {
		return model.Shop{}, invalidInput("no valid update fields provided")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return model.Shop{}, invalidInput("shopName must not be empty")
	}

	var out model.Shop
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := r.Shops().FindByID(ctx, shopID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("shop not found")
		}
		if err != nil {
			return dbError(err)
		}
		if in.Name != nil {
			s.Name = strings.TrimSpace(*in.Name)
		}
		if in.Address != nil {
			s.Address = strings.TrimSpace(*in.Address)
			if s.Address == "" {
				s.Address = model.DefaultShopAddress
			}
		}
		if err := r.Shops().Update(ctx, s); err != nil {
			return dbError(err)
		}
		out = s
		return nil
	})
	if err != nil {
		return model.Shop{}, err
	}
	return out, nil
}
