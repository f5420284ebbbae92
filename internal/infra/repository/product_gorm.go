package repository

import (
	"context"
	"errors"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 店舗の商品を新しい順で返す
func (r *ProductGormRepository) ListByShopID(ctx context.Context, shopID string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at desc").Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得（他店舗の商品は見つからない扱い）
func (r *ProductGormRepository) FindByID(ctx context.Context, shopID string, productID string) (model.Product, error) {
	return r.find(r.db.WithContext(ctx), shopID, productID)
}

// SELECT ... FOR UPDATE（同じ商品への同時注文を直列化する）
func (r *ProductGormRepository) FindByIDForUpdate(ctx context.Context, shopID string, productID string) (model.Product, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), shopID, productID)
}

func (r *ProductGormRepository) find(q *gorm.DB, shopID string, productID string) (model.Product, error) {
	if !isUUID(productID, shopID) {
		return model.Product{}, repo.ErrNotFound
	}
	var p model.Product
	err := q.Where("id = ? AND shop_id = ?", productID, shopID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新（在庫はInventoryRepositoryで変える）
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	if !isUUID(p.ID, p.ShopID) {
		return repo.ErrNotFound
	}
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND shop_id = ?", p.ID, p.ShopID).
		Updates(map[string]interface{}{
			"name":                p.Name,
			"category":            p.Category,
			"price":               p.Price,
			"cost":                p.Cost,
			"low_stock_threshold": p.LowStockThreshold,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（注文明細はスナップショットなので影響しない）
func (r *ProductGormRepository) Delete(ctx context.Context, shopID string, productID string) error {
	if !isUUID(productID, shopID) {
		return repo.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", productID, shopID).
		Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
