package repository

import (
	"context"
	"time"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"gorm.io/gorm"
)

// 削除済み商品の売上のカテゴリ
const categoryExpr = "COALESCE(p.category, 'Uncategorized')"

// 集計は行を取ってきてGo側（decimal）で足す。
// SQLiteとPostgresで日付関数・数値型が違うため
type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) StockTotals(ctx context.Context, shopID string) (repo.StockTotals, error) {
	var t repo.StockTotals
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("COUNT(*) AS product_types, COALESCE(SUM(stock), 0) AS quantity").
		Where("shop_id = ?", shopID).
		Scan(&t).Error
	return t, err
}

func (r *DashboardGormRepository) LowStock(ctx context.Context, shopID string, limit int) ([]model.Product, error) {
	items := []model.Product{}
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND stock <= low_stock_threshold", shopID).
		Order("stock asc").Order("name asc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DashboardGormRepository) SoldLines(ctx context.Context, shopID string, from time.Time, to time.Time) ([]repo.SoldLine, error) {
	var rows []repo.SoldLine
	err := r.db.WithContext(ctx).Table("order_items AS oi").
		Select("o.date AS date, oi.quantity AS quantity, oi.price_snapshot AS price, oi.cost_snapshot AS cost").
		Joins("JOIN orders AS o ON o.id = oi.order_id").
		Where("o.shop_id = ? AND o.date >= ? AND o.date < ?", shopID, from, to).
		Order("o.date asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DashboardGormRepository) SalesByCategory(ctx context.Context, shopID string) ([]repo.CategorySales, error) {
	var rows []repo.CategorySales
	err := r.db.WithContext(ctx).Table("order_items AS oi").
		Select(categoryExpr + " AS category, SUM(oi.price_snapshot * oi.quantity) AS total_sales").
		Joins("JOIN orders AS o ON o.id = oi.order_id").
		Joins("LEFT JOIN products AS p ON p.id = oi.product_id").
		Where("o.shop_id = ?", shopID).
		Group(categoryExpr).
		Order("total_sales desc").Order("category asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TotalSales = rows[i].TotalSales.Round(2)
	}
	return rows, nil
}
