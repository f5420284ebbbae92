package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 在庫しきい値の初期値
const DefaultLowStockThreshold int64 = 10

type Product struct {
	ID                string          `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID            string          `gorm:"type:uuid;not null;index" json:"shopId"`
	Name              string          `gorm:"type:varchar(255);not null" json:"name"`
	Category          string          `gorm:"type:varchar(255);not null" json:"category"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"` // 販売価格
	Cost              decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`  // 仕入れ原価
	Stock             int64           `gorm:"not null;default:0" json:"stock"`
	LowStockThreshold int64           `gorm:"not null;default:10" json:"lowStockThreshold"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
