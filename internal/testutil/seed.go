package testutil

import (
	"testing"
	"time"

	"shoppos/internal/domain/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 店舗とオーナーを作って、オーナーのPrincipalを返す
func MustCreateShop(t *testing.T, gdb *gorm.DB, name string) (model.Shop, model.Principal) {
	t.Helper()

	shopID := uuid.NewString()
	owner := model.User{
		ID:           uuid.NewString(),
		Name:         name + " Owner",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         model.RoleOwner,
		SalaryStatus: model.SalaryPending,
		ShopID:       &shopID,
		IsActive:     true,
	}
	require.NoError(t, gdb.Create(&owner).Error)

	shop := model.Shop{ID: shopID, Name: name, Address: "12 MG Road, Pune", OwnerID: owner.ID}
	require.NoError(t, gdb.Create(&shop).Error)

	return shop, model.Principal{UserID: owner.ID, Name: owner.Name, Role: model.RoleOwner, ShopID: shopID}
}

func MustCreateEmployee(t *testing.T, gdb *gorm.DB, shopID string, name string) model.Principal {
	t.Helper()

	sid := shopID
	u := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         model.RoleEmployee,
		SalaryStatus: model.SalaryPending,
		ShopID:       &sid,
		IsActive:     true,
	}
	require.NoError(t, gdb.Create(&u).Error)
	return model.Principal{UserID: u.ID, Name: u.Name, Role: model.RoleEmployee, ShopID: shopID}
}

type ProductSeed struct {
	Name      string
	Category  string // 空なら "General"
	Price     int64
	Cost      int64
	Stock     int64
	Threshold int64
}

func MustCreateProduct(t *testing.T, gdb *gorm.DB, shopID string, s ProductSeed) model.Product {
	t.Helper()

	category := s.Category
	if category == "" {
		category = "General"
	}
	p := model.Product{
		ID:                uuid.NewString(),
		ShopID:            shopID,
		Name:              s.Name,
		Category:          category,
		Price:             decimal.NewFromInt(s.Price),
		Cost:              decimal.NewFromInt(s.Cost),
		Stock:             s.Stock,
		LowStockThreshold: s.Threshold,
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

func MustGetProduct(t *testing.T, gdb *gorm.DB, productID string) model.Product {
	t.Helper()

	var p model.Product
	require.NoError(t, gdb.Where("id = ?", productID).First(&p).Error)
	return p
}

// 店舗のOrder/Invoice/Notification件数
type ShopCounts struct {
	Orders        int64
	OrderItems    int64
	Invoices      int64
	Notifications int64
}

func MustCount(t *testing.T, gdb *gorm.DB, shopID string) ShopCounts {
	t.Helper()

	var c ShopCounts
	require.NoError(t, gdb.Model(&model.Order{}).Where("shop_id = ?", shopID).Count(&c.Orders).Error)
	require.NoError(t, gdb.Model(&model.OrderItem{}).
		Where("order_id IN (?)", gdb.Model(&model.Order{}).Select("id").Where("shop_id = ?", shopID)).
		Count(&c.OrderItems).Error)
	require.NoError(t, gdb.Model(&model.Invoice{}).Where("shop_id = ?", shopID).Count(&c.Invoices).Error)
	require.NoError(t, gdb.Model(&model.Notification{}).Where("shop_id = ?", shopID).Count(&c.Notifications).Error)
	return c
}

type UUIDGen struct{}

func (UUIDGen) NewID() string { return uuid.NewString() }

// 固定時刻（秒単位に丸める）
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

func NewFixedClock() FixedClock {
	return FixedClock{T: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)}
}

// UniqueEmail はPostgresでテーブルを共有しても衝突しないメールアドレスを返す
func UniqueEmail(local string) string {
	return local + "+" + uuid.NewString()[:8] + "@example.com"
}
