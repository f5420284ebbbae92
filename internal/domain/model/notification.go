package model

import "time"

type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID    string    `gorm:"type:uuid;not null;index" json:"shopId"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}
