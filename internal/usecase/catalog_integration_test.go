package usecase_test

import (
	"context"
	"testing"
	"time"

	"shoppos/internal/domain/model"
	infraRepo "shoppos/internal/infra/repository"
	"shoppos/internal/testutil"
	"shoppos/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// Product（実DB）
// =====================

func TestProductUsecase_CRUD(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	emp := testutil.MustCreateEmployee(t, gdb, shop.ID, "Anita")
	uc := usecase.NewProductUsecase(infraRepo.NewTxManagerGorm(gdb, 0), testutil.UUIDGen{})

	created, err := uc.Create(ctx, shop.ID, own, usecase.CreateProductInput{
		Name:     " Tea ",
		Category: "Beverages",
		Price:    decimal.RequireFromString("99.50"),
		Cost:     decimal.NewFromInt(70),
		Stock:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tea", created.Name)
	assert.Equal(t, model.DefaultLowStockThreshold, created.LowStockThreshold)

	list, err := uc.List(ctx, shop.ID, emp)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("99.50")))

	// 従業員は在庫だけ変えられる（履歴が残る）
	newStock := int64(15)
	updated, err := uc.Update(ctx, shop.ID, emp, created.ID, usecase.UpdateProductInput{Stock: &newStock, Reason: "damaged"})
	require.NoError(t, err)
	assert.Equal(t, int64(15), updated.Stock)
	assert.Equal(t, int64(15), testutil.MustGetProduct(t, gdb, created.ID).Stock)

	var adjs []model.InventoryAdjustment
	require.NoError(t, gdb.Where("product_id = ?", created.ID).Find(&adjs).Error)
	require.Len(t, adjs, 1)
	assert.Equal(t, int64(-5), adjs[0].Delta)
	assert.Equal(t, "damaged", adjs[0].Reason)
	assert.Equal(t, emp.UserID, adjs[0].ActorUserID)

	// 在庫が変わらなければ履歴は増えない
	price := decimal.NewFromInt(120)
	_, err = uc.Update(ctx, shop.ID, own, created.ID, usecase.UpdateProductInput{Price: &price, Stock: &newStock})
	require.NoError(t, err)
	var n int64
	require.NoError(t, gdb.Model(&model.InventoryAdjustment{}).Where("product_id = ?", created.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.True(t, testutil.MustGetProduct(t, gdb, created.ID).Price.Equal(price))

	// 存在しない商品
	_, err = uc.Update(ctx, shop.ID, own, uuid.NewString(), usecase.UpdateProductInput{Price: &price})
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, shop.ID, own, created.ID))
	err = uc.Delete(ctx, shop.ID, own, created.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

// 削除した商品の注文履歴は残る
func TestProductDelete_KeepsOrderHistory(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	p := testutil.MustCreateProduct(t, gdb, shop.ID, testutil.ProductSeed{Name: "Tea", Price: 10, Cost: 5, Stock: 5, Threshold: 0})

	txm := infraRepo.NewTxManagerGorm(gdb, 0)
	orderUC := usecase.NewOrderUsecase(txm, testutil.StubRenderer{}, testutil.NewMemStore(), testutil.UUIDGen{}, testutil.NewFixedClock())
	out, err := orderUC.CreateOrder(ctx, shop.ID, own, usecase.CreateOrderInput{Items: []usecase.OrderLineInput{{ProductID: p.ID, Quantity: 1}}})
	require.NoError(t, err)

	require.NoError(t, usecase.NewProductUsecase(txm, testutil.UUIDGen{}).Delete(ctx, shop.ID, own, p.ID))

	got, err := orderUC.GetOrder(ctx, shop.ID, own, out.Order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Tea", got.Items[0].NameSnapshot)
}

// 小数3桁以上・numeric(12,2)を超える金額は保存しない
func TestProductUsecase_RejectsUnstorableMoney(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	uc := usecase.NewProductUsecase(infraRepo.NewTxManagerGorm(gdb, 0), testutil.UUIDGen{})

	tests := []struct {
		name    string
		price   string
		cost    string
		wantMsg string
	}{
		{"price with 3 decimals", "19.999", "10", "price must have at most 2 decimal places"},
		{"cost with 3 decimals", "20", "0.005", "cost must have at most 2 decimal places"},
		{"price over column range", "10000000000", "1", "price is too large"},
		{"cost over column range", "1", "10000000000.00", "cost is too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, shop.ID, own, usecase.CreateProductInput{
				Name: "Tea", Category: "Beverages",
				Price: decimal.RequireFromString(tt.price), Cost: decimal.RequireFromString(tt.cost),
			})
			require.ErrorIs(t, err, usecase.ErrInvalidInput)
			he, ok := usecase.AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, he.Message)
		})
	}
	list, err := uc.List(ctx, shop.ID, own)
	require.NoError(t, err)
	assert.Empty(t, list)

	// 上限ちょうど・末尾0は通る
	created, err := uc.Create(ctx, shop.ID, own, usecase.CreateProductInput{
		Name: "Gold", Category: "Jewellery",
		Price: decimal.RequireFromString("9999999999.99"), Cost: decimal.RequireFromString("19.900"),
	})
	require.NoError(t, err)
	assert.True(t, created.Cost.Equal(decimal.RequireFromString("19.90")))

	// 更新でも同じ
	bad := decimal.RequireFromString("19.999")
	_, err = uc.Update(ctx, shop.ID, own, created.ID, usecase.UpdateProductInput{Price: &bad})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	huge := decimal.RequireFromString("10000000000")
	_, err = uc.Update(ctx, shop.ID, own, created.ID, usecase.UpdateProductInput{Cost: &huge})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	stored := testutil.MustGetProduct(t, gdb, created.ID)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("9999999999.99")))
	assert.True(t, stored.Cost.Equal(decimal.RequireFromString("19.90")))
}

// =====================
// Shop（実DB）
// =====================

func TestShopUsecase_GetAndUpdate(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	uc := usecase.NewShopUsecase(infraRepo.NewTxManagerGorm(gdb, 0))

	got, err := uc.Get(ctx, shop.ID, own)
	require.NoError(t, err)
	assert.Equal(t, "Store", got.Name)

	name := "Sharma Traders"
	blank := ""
	updated, err := uc.Update(ctx, shop.ID, own, usecase.UpdateShopInput{Name: &name, Address: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Sharma Traders", updated.Name)
	assert.Equal(t, model.DefaultShopAddress, updated.Address)

	got, err = uc.Get(ctx, shop.ID, own)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Traders", got.Name)
	assert.Equal(t, model.DefaultShopAddress, got.Address)
}

// =====================
// Notification（実DB）
// =====================

func TestNotificationUsecase_ListAndMarkRead(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	other, otherOwner := testutil.MustCreateShop(t, gdb, "Other")

	base := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	for i, msg := range []string{"first", "second", "third"} {
		require.NoError(t, gdb.Create(&model.Notification{
			ID: uuid.NewString(), ShopID: shop.ID, Message: msg, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
	require.NoError(t, gdb.Create(&model.Notification{
		ID: uuid.NewString(), ShopID: other.ID, Message: "other", CreatedAt: base,
	}).Error)

	uc := usecase.NewNotificationUsecase(infraRepo.NewTxManagerGorm(gdb, 0))

	list, err := uc.List(ctx, shop.ID, own, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Message)
	assert.Equal(t, "first", list[2].Message)

	limited, err := uc.List(ctx, shop.ID, own, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	out, err := uc.MarkAllRead(ctx, shop.ID, own)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Updated)

	// 2回目は0件
	out, err = uc.MarkAllRead(ctx, shop.ID, own)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Updated)

	// 他店舗の通知は既読にならない
	otherList, err := uc.List(ctx, other.ID, otherOwner, 0)
	require.NoError(t, err)
	require.Len(t, otherList, 1)
	assert.False(t, otherList[0].IsRead)
}
