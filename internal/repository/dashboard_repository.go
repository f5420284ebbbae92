package repository

import (
	"context"
	"time"

	"shoppos/internal/domain/model"

	"github.com/shopspring/decimal"
)

type StockTotals struct {
	ProductTypes int64
	Quantity     int64
}

// 集計用の注文明細1行
type SoldLine struct {
	Date     time.Time
	Quantity int64
	Price    decimal.Decimal
	Cost     decimal.Decimal
}

type CategorySales struct {
	Category   string          `json:"category"`
	TotalSales decimal.Decimal `json:"totalSales"`
}

// ダッシュボード用の読み取り専用クエリ
type DashboardRepository interface {
	StockTotals(ctx context.Context, shopID string) (StockTotals, error)

	// stock <= low_stock_threshold の商品（在庫の少ない順）
	LowStock(ctx context.Context, shopID string, limit int) ([]model.Product, error)

	// [from, to) の注文の明細（スナップショット価格・原価）
	SoldLines(ctx context.Context, shopID string, from time.Time, to time.Time) ([]SoldLine, error)

	// 全期間のカテゴリ別売上（削除済み商品の分は "Uncategorized"）
	SalesByCategory(ctx context.Context, shopID string) ([]CategorySales, error)
}
