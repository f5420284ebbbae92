package model

import "time"

const DefaultShopAddress = "Address not set"

// 店舗（テナント）。請求書のヘッダにも使う
type Shop struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"shopName"`
	Address   string    `gorm:"type:varchar(512);not null" json:"address"`
	OwnerID   string    `gorm:"type:uuid;not null;uniqueIndex" json:"ownerId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
