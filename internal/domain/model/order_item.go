package model

import "github.com/shopspring/decimal"

// 注文明細
// 販売時点の商品名・価格・原価を必ず保存（あとで商品を編集しても変わらない）
type OrderItem struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID       string          `gorm:"type:uuid;not null;index" json:"-"`
	ProductID     string          `gorm:"type:uuid;not null;index" json:"productId"`
	NameSnapshot  string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity      int64           `gorm:"not null" json:"quantity"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CostSnapshot  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	Position      int             `gorm:"not null" json:"-"`
}

// 明細の売上
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.PriceSnapshot.Mul(decimal.NewFromInt(it.Quantity))
}

// 明細の原価合計
func (it OrderItem) LineCost() decimal.Decimal {
	return it.CostSnapshot.Mul(decimal.NewFromInt(it.Quantity))
}
