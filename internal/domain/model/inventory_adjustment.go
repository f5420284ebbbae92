package model

import "time"

//在庫調整の履歴（注文以外で在庫を変えたとき）

type InventoryAdjustment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID      string    `gorm:"type:uuid;not null;index" json:"shopId"`
	ProductID   string    `gorm:"type:uuid;not null;index" json:"productId"`
	ActorUserID string    `gorm:"type:uuid;not null;index" json:"actorUserId"`
	Delta       int64     `gorm:"not null" json:"delta"`
	Reason      string    `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
