package invoice

import (
	"bytes"
	"testing"
	"time"

	"shoppos/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() (model.Order, model.Shop) {
	date := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	items := []model.OrderItem{
		{ID: "i1", ProductID: "p1", NameSnapshot: "Basmati Rice 5kg", Quantity: 2, PriceSnapshot: decimal.RequireFromString("450.50"), CostSnapshot: decimal.NewFromInt(400)},
		{ID: "i2", ProductID: "p2", NameSnapshot: "Tea", Quantity: 1, PriceSnapshot: decimal.NewFromInt(120), CostSnapshot: decimal.NewFromInt(90)},
	}
	order := model.Order{
		ID:           "order-1",
		ShopID:       "shop-1",
		CustomerName: model.DefaultCustomerName,
		BillerName:   "Rohit",
		Items:        items,
		TotalRevenue: decimal.RequireFromString("1021.00"),
		TotalCost:    decimal.NewFromInt(890),
		TotalProfit:  decimal.RequireFromString("131.00"),
		Date:         date,
	}
	shop := model.Shop{ID: "shop-1", Name: "Sharma General Store", Address: "12 MG Road, Pune"}
	return order, shop
}

func TestPDFRenderer_Render(t *testing.T) {
	order, shop := sampleOrder()
	r := NewPDFRenderer("en-IN")

	out, err := r.Render(order, shop)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestPDFRenderer_Deterministic(t *testing.T) {
	order, shop := sampleOrder()
	r := NewPDFRenderer("en-IN")

	a, err := r.Render(order, shop)
	require.NoError(t, err)
	b, err := r.Render(order, shop)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPDFRenderer_Money(t *testing.T) {
	r := NewPDFRenderer("en-IN")
	assert.Equal(t, "Rs. 50.00", r.Money(decimal.NewFromInt(50)))
	assert.Equal(t, "Rs. 0.50", r.Money(decimal.RequireFromString("0.5")))

	// 不正なロケールは英語にフォールバック
	fallback := NewPDFRenderer("not a locale!!")
	assert.Equal(t, "Rs. 12.35", fallback.Money(decimal.RequireFromString("12.345")))
}

// float64で表せない桁数でも丸めずにそのまま出る
func TestPDFRenderer_MoneyExact(t *testing.T) {
	r := NewPDFRenderer("en")
	assert.Equal(t, "Rs. 1,234,567.89", r.Money(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "Rs. 90,071,992,547,409.93", r.Money(decimal.RequireFromString("90071992547409.93")))
	assert.Equal(t, "Rs. 0.13", r.Money(decimal.RequireFromString("0.125")))
	assert.Equal(t, "Rs. -12.50", r.Money(decimal.RequireFromString("-12.5")))
}
