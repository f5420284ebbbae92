package usecase

import (
	"context"
	"errors"
	"strings"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
}

// DI
func NewProductUsecase(tx repo.TransactionManager, idGen IDGenerator) *ProductUsecase {
	return &ProductUsecase{tx: tx, idGen: idGen}
}

type CreateProductInput struct {
	Name              string
	Category          string
	Price             decimal.Decimal
	Cost              decimal.Decimal
	Stock             int64
	LowStockThreshold *int64
}

// nilの項目は変更しない
type UpdateProductInput struct {
	Name              *string
	Category          *string
	Price             *decimal.Decimal
	Cost              *decimal.Decimal
	Stock             *int64
	LowStockThreshold *int64
	Reason            string
}

func (u *ProductUsecase) List(ctx context.Context, shopID string, p model.Principal) ([]model.Product, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return nil, err
	}

	var out []model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.Products().ListByShopID(ctx, shopID)
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

// 商品追加はオーナーのみ
func (u *ProductUsecase) Create(ctx context.Context, shopID string, p model.Principal, in CreateProductInput) (model.Product, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return model.Product{}, err
	}
	if !p.IsOwner() {
		return model.Product{}, ownerOnly("only owners can add new products")
	}

	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return model.Product{}, invalidInput("name and category are required")
	}
	if err := checkMoney("price", in.Price); err != nil {
		return model.Product{}, err
	}
	if err := checkMoney("cost", in.Cost); err != nil {
		return model.Product{}, err
	}
	if in.Stock < 0 {
		return model.Product{}, invalidInput("stock must be >= 0")
	}
	threshold := model.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return model.Product{}, invalidInput("lowStockThreshold must be >= 0")
		}
		threshold = *in.LowStockThreshold
	}

	var out model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Products().Create(ctx, model.Product{
			ID:                u.idGen.NewID(),
			ShopID:            shopID,
			Name:              name,
			Category:          category,
			Price:             in.Price,
			Cost:              in.Cost,
			Stock:             in.Stock,
			LowStockThreshold: threshold,
		})
		if err != nil {
			return dbError(err)
		}
		out = created
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// 価格・原価・商品情報はオーナーのみ、在庫は従業員も変えられる
func (u *ProductUsecase) Update(ctx context.Context, shopID string, p model.Principal, productID string, in UpdateProductInput) (model.Product, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return model.Product{}, err
	}
	if in.Name == nil && in.Category == nil && in.Price == nil && in.Cost == nil &&
		in.Stock == nil && in.LowStockThreshold == nil {
		return model.Product{}, invalidInput("no valid update fields provided")
	}
	if !p.IsOwner() && (in.Name != nil || in.Category != nil || in.Price != nil || in.Cost != nil || in.LowStockThreshold != nil) {
		return model.Product{}, ownerOnly("only owners can change product details or prices")
	}
	if err := validateProductUpdate(in); err != nil {
		return model.Product{}, err
	}

	var out model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文と同じく行ロックしてから書く
		cur, err := r.Products().FindByIDForUpdate(ctx, shopID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("product not found in this shop")
		}
		if err != nil {
			return dbError(err)
		}

		next := cur
		if in.Name != nil {
			next.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			next.Category = strings.TrimSpace(*in.Category)
		}
		if in.Price != nil {
			next.Price = *in.Price
		}
		if in.Cost != nil {
			next.Cost = *in.Cost
		}
		if in.LowStockThreshold != nil {
			next.LowStockThreshold = *in.LowStockThreshold
		}
		if err := r.Products().Update(ctx, next); err != nil {
			return dbError(err)
		}

		//在庫を変えたら調整履歴を残す
		if in.Stock != nil && *in.Stock != cur.Stock {
			if err := r.Inventory().SetStock(ctx, shopID, productID, *in.Stock); err != nil {
				return dbError(err)
			}
			reason := strings.TrimSpace(in.Reason)
			if reason == "" {
				reason = "manual update"
			}
			if err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
				ID:          u.idGen.NewID(),
				ShopID:      shopID,
				ProductID:   productID,
				ActorUserID: p.UserID,
				Delta:       *in.Stock - cur.Stock,
				Reason:      reason,
			}); err != nil {
				return dbError(err)
			}
			next.Stock = *in.Stock
		}

		out = next
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// 商品削除はオーナーのみ（過去の注文はスナップショットなので残る）
func (u *ProductUsecase) Delete(ctx context.Context, shopID string, p model.Principal, productID string) error {
	if err := authorizeShop(p, shopID); err != nil {
		return err
	}
	if !p.IsOwner() {
		return ownerOnly("only owners can delete products")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Products().Delete(ctx, shopID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("product not found in this shop")
		}
		if err != nil {
			return dbError(err)
		}
		return nil
	})
}

func validateProductUpdate(in UpdateProductInput) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return invalidInput("name must not be empty")
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return invalidInput("category must not be empty")
	}
	if in.Price != nil {
		if err := checkMoney("price", *in.Price); err != nil {
			return err
		}
	}
	if in.Cost != nil {
		if err := checkMoney("cost", *in.Cost); err != nil {
			return err
		}
	}
	if in.Stock != nil && *in.Stock < 0 {
		return invalidInput("stock must be >= 0")
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		return invalidInput("lowStockThreshold must be >= 0")
	}
	return nil
}
