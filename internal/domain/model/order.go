package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCustomerName = "Walk-in Customer"

// 注文は作成後に更新しない（追記のみ）
type Order struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID       string          `gorm:"type:uuid;not null;index" json:"shopId"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customerName"`
	BillerName   string          `gorm:"type:varchar(255);not null" json:"billerName"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	TotalRevenue decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalRevenue"`
	TotalCost    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalCost"`
	TotalProfit  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalProfit"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
}
