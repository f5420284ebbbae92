package usecase_test

import (
	"context"
	"net/http"
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
	"gorm.io/gorm"
)

// 指定時刻の注文を作る
func mustOrderAt(t *testing.T, gdb *gorm.DB, shopID string, p model.Principal, at time.Time, items ...usecase.OrderLineInput) usecase.CreateOrderOutput {
	t.Helper()

	uc := usecase.NewOrderUsecase(infraRepo.NewTxManagerGorm(gdb, 0),
		testutil.StubRenderer{}, testutil.NewMemStore(), testutil.UUIDGen{}, testutil.FixedClock{T: at})
	out, err := uc.CreateOrder(context.Background(), shopID, p, usecase.CreateOrderInput{
		CustomerName: "Priya",
		Items:        items,
	})
	require.NoError(t, err)
	return out
}

func day(s string, hour int) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

// =====================
// Dashboard（実DB）
// =====================

func TestDashboardUsecase_Summary(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	emp := testutil.MustCreateEmployee(t, gdb, shop.ID, "Anita")

	tea := testutil.MustCreateProduct(t, gdb, shop.ID, testutil.ProductSeed{Name: "Tea", Category: "Beverages", Price: 50, Cost: 30, Stock: 100, Threshold: 10})
	rice := testutil.MustCreateProduct(t, gdb, shop.ID, testutil.ProductSeed{Name: "Rice", Category: "Grocery", Price: 100, Cost: 80, Stock: 12, Threshold: 10})
	soap := testutil.MustCreateProduct(t, gdb, shop.ID, testutil.ProductSeed{Name: "Soap", Category: "Personal", Price: 20, Cost: 10, Stock: 5, Threshold: 10})

	mustOrderAt(t, gdb, shop.ID, emp, day("2024-03-05", 9), line(tea.ID, 2), line(rice.ID, 1))
	mustOrderAt(t, gdb, shop.ID, own, day("2024-03-01", 10), line(tea.ID, 1))
	mustOrderAt(t, gdb, shop.ID, emp, day("2024-02-20", 12), line(rice.ID, 1)) // 先月だが30日以内
	mustOrderAt(t, gdb, shop.ID, emp, day("2024-01-10", 12), line(tea.ID, 4))  // カテゴリ集計のみ

	// 他店舗の注文は混ざらない
	other, otherOwner := testutil.MustCreateShop(t, gdb, "Other")
	otherTea := testutil.MustCreateProduct(t, gdb, other.ID, testutil.ProductSeed{Name: "Tea", Category: "Beverages", Price: 999, Cost: 1, Stock: 10, Threshold: 1})
	mustOrderAt(t, gdb, other.ID, otherOwner, day("2024-03-05", 8), line(otherTea.ID, 1))

	uc := usecase.NewDashboardUsecase(infraRepo.NewTxManagerGorm(gdb, 0), testutil.NewFixedClock())
	out, err := uc.Summary(ctx, shop.ID, own)
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalProductTypes)
	assert.Equal(t, int64(93+10+5), out.TotalProductQuantity)

	require.Len(t, out.LowStockItems, 2)
	assert.Equal(t, soap.ID, out.LowStockItems[0].ID)
	assert.Equal(t, rice.ID, out.LowStockItems[1].ID)

	assert.Equal(t, int64(4), out.UnitsSoldThisMonth)
	assert.True(t, decimal.NewFromInt(250).Equal(out.RevenueThisMonth), out.RevenueThisMonth.String())
	assert.True(t, decimal.NewFromInt(80).Equal(out.ProfitThisMonth), out.ProfitThisMonth.String())

	// 2024-02-05〜2024-03-05の30日分、注文が無い日は0
	require.Len(t, out.RevenueTrend, 30)
	assert.Equal(t, "2024-02-05", out.RevenueTrend[0].Date)
	assert.Equal(t, "2024-03-05", out.RevenueTrend[29].Date)
	want := map[string]int64{"2024-02-20": 100, "2024-03-01": 50, "2024-03-05": 200}
	for _, d := range out.RevenueTrend {
		assert.True(t, decimal.NewFromInt(want[d.Date]).Equal(d.TotalRevenue), "%s: %s", d.Date, d.TotalRevenue)
	}

	require.Len(t, out.SalesByCategory, 2)
	assert.Equal(t, "Beverages", out.SalesByCategory[0].Category)
	assert.True(t, decimal.NewFromInt(350).Equal(out.SalesByCategory[0].TotalSales))
	assert.Equal(t, "Grocery", out.SalesByCategory[1].Category)
	assert.True(t, decimal.NewFromInt(200).Equal(out.SalesByCategory[1].TotalSales))

	// 商品を消しても売上は残る（カテゴリ不明として）
	require.NoError(t, gdb.Where("id = ?", rice.ID).Delete(&model.Product{}).Error)
	out, err = uc.Summary(ctx, shop.ID, own)
	require.NoError(t, err)
	require.Len(t, out.SalesByCategory, 2)
	assert.Equal(t, "Uncategorized", out.SalesByCategory[1].Category)
	assert.True(t, decimal.NewFromInt(200).Equal(out.SalesByCategory[1].TotalSales))
	assert.True(t, decimal.NewFromInt(250).Equal(out.RevenueThisMonth))

	// オーナー以外・他店舗は403
	_, err = uc.Summary(ctx, shop.ID, emp)
	assertHTTPError(t, err, usecase.ErrForbidden, http.StatusForbidden, "only owners can view the dashboard")
	_, err = uc.Summary(ctx, shop.ID, otherOwner)
	assertHTTPError(t, err, usecase.ErrForbidden, http.StatusForbidden, "")
}

func TestDashboardUsecase_EmptyShop(t *testing.T) {
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")

	out, err := usecase.NewDashboardUsecase(infraRepo.NewTxManagerGorm(gdb, 0), testutil.NewFixedClock()).
		Summary(context.Background(), shop.ID, own)
	require.NoError(t, err)

	assert.Zero(t, out.TotalProductTypes)
	assert.Zero(t, out.TotalProductQuantity)
	assert.Empty(t, out.LowStockItems)
	assert.NotNil(t, out.SalesByCategory)
	assert.True(t, out.RevenueThisMonth.IsZero())
	assert.Len(t, out.RevenueTrend, 30)
}

// =====================
// Employee（実DB）
// =====================

func TestEmployeeUsecase_ListUpdateRemove(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.MustOpenDB(t)
	shop, own := testutil.MustCreateShop(t, gdb, "Store")
	anita := testutil.MustCreateEmployee(t, gdb, shop.ID, "Anita")
	vikram := testutil.MustCreateEmployee(t, gdb, shop.ID, "Vikram")
	other, _ := testutil.MustCreateShop(t, gdb, "Other")
	outsider := testutil.MustCreateEmployee(t, gdb, other.ID, "Outsider")

	uc := usecase.NewEmployeeUsecase(infraRepo.NewTxManagerGorm(gdb, 0))

	list, err := uc.List(ctx, shop.ID, own)
	require.NoError(t, err)
	ids := []string{}
	for _, e := range list.Employees {
		ids = append(ids, e.ID)
		assert.Equal(t, model.RoleEmployee, e.Role)
	}
	assert.ElementsMatch(t, []string{anita.UserID, vikram.UserID}, ids)

	_, err = uc.List(ctx, shop.ID, anita)
	assertHTTPError(t, err, usecase.ErrForbidden, http.StatusForbidden, "")

	// 給与更新
	amount := decimal.RequireFromString("15000.505")
	paid := model.SalaryPaid
	next := day("2024-04-01", 0)
	updated, err := uc.UpdateSalary(ctx, shop.ID, own, anita.UserID, usecase.UpdateSalaryInput{
		Amount: &amount, Status: &paid, NextPaymentDate: &next,
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("15000.51").Equal(updated.Employee.SalaryAmount))

	var stored model.User
	require.NoError(t, gdb.Where("id = ?", anita.UserID).First(&stored).Error)
	assert.Equal(t, model.SalaryPaid, stored.SalaryStatus)
	assert.True(t, decimal.RequireFromString("15000.51").Equal(stored.SalaryAmount))
	require.NotNil(t, stored.NextPaymentDate)
	assert.True(t, next.Equal(*stored.NextPaymentDate))

	// 金額だけ変えても状態は残る
	amount = decimal.NewFromInt(16000)
	_, err = uc.UpdateSalary(ctx, shop.ID, own, anita.UserID, usecase.UpdateSalaryInput{Amount: &amount})
	require.NoError(t, err)
	require.NoError(t, gdb.Where("id = ?", anita.UserID).First(&stored).Error)
	assert.Equal(t, model.SalaryPaid, stored.SalaryStatus)

	negative := decimal.NewFromInt(-1)
	huge := decimal.RequireFromString("10000000000")
	bogus := model.SalaryStatus("late")
	tests := []struct {
		name       string
		employeeID string
		in         usecase.UpdateSalaryInput
		kind       error
		status     int
	}{
		{"empty", anita.UserID, usecase.UpdateSalaryInput{}, usecase.ErrInvalidInput, http.StatusBadRequest},
		{"negative", anita.UserID, usecase.UpdateSalaryInput{Amount: &negative}, usecase.ErrInvalidInput, http.StatusBadRequest},
		{"too large", anita.UserID, usecase.UpdateSalaryInput{Amount: &huge}, usecase.ErrInvalidInput, http.StatusBadRequest},
		{"bad status", anita.UserID, usecase.UpdateSalaryInput{Status: &bogus}, usecase.ErrInvalidInput, http.StatusBadRequest},
		{"owner is not an employee", own.UserID, usecase.UpdateSalaryInput{Amount: &amount}, usecase.ErrNotFound, http.StatusNotFound},
		{"other shop", outsider.UserID, usecase.UpdateSalaryInput{Amount: &amount}, usecase.ErrNotFound, http.StatusNotFound},
		{"unknown", uuid.NewString(), usecase.UpdateSalaryInput{Amount: &amount}, usecase.ErrNotFound, http.StatusNotFound},
		{"malformed id", "not-a-uuid", usecase.UpdateSalaryInput{Amount: &amount}, usecase.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.UpdateSalary(ctx, shop.ID, own, tt.employeeID, tt.in)
			assertHTTPError(t, err, tt.kind, tt.status, "")
		})
	}

	// 削除しても注文の担当者名は残る
	tea := testutil.MustCreateProduct(t, gdb, shop.ID, testutil.ProductSeed{Name: "Tea", Price: 50, Cost: 30, Stock: 10, Threshold: 2})
	order := mustOrderAt(t, gdb, shop.ID, vikram, day("2024-03-05", 9), line(tea.ID, 1))

	require.NoError(t, uc.Remove(ctx, shop.ID, own, vikram.UserID))

	var n int64
	require.NoError(t, gdb.Model(&model.User{}).Where("id = ?", vikram.UserID).Count(&n).Error)
	assert.Zero(t, n)

	var kept model.Order
	require.NoError(t, gdb.Where("id = ?", order.Order.ID).First(&kept).Error)
	assert.Equal(t, "Vikram", kept.BillerName)

	err = uc.Remove(ctx, shop.ID, own, vikram.UserID)
	assertHTTPError(t, err, usecase.ErrNotFound, http.StatusNotFound, "employee not found in this shop")

	err = uc.Remove(ctx, shop.ID, anita, outsider.UserID)
	assertHTTPError(t, err, usecase.ErrForbidden, http.StatusForbidden, "")
	err = uc.Remove(ctx, shop.ID, own, outsider.UserID)
	assertHTTPError(t, err, usecase.ErrNotFound, http.StatusNotFound, "")
}
