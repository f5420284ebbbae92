package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文と1:1（order_idはユニーク）
type Invoice struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID       string          `gorm:"type:uuid;not null;index" json:"shopId"`
	OrderID      string          `gorm:"type:uuid;not null;uniqueIndex" json:"orderId"`
	PDFPath      string          `gorm:"column:pdf_path;type:varchar(512);not null" json:"pdfPath"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customerName"`
	BillerName   string          `gorm:"type:varchar(255);not null" json:"billerName"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
}
