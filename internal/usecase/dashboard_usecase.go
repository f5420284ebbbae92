package usecase

import (
	"context"
	"time"

	"shoppos/internal/domain/model"
	repo "shoppos/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	dashboardLowStockLimit = 5
	revenueTrendDays       = 30
)

type DailyRevenue struct {
	Date         string          `json:"date"` // YYYY-MM-DD (UTC)
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type DashboardOutput struct {
	TotalProductTypes    int64                `json:"totalProductTypes"`
	TotalProductQuantity int64                `json:"totalProductQuantity"`
	LowStockItems        []model.Product      `json:"lowStockItems"`
	UnitsSoldThisMonth   int64                `json:"unitsSoldThisMonth"`
	RevenueThisMonth     decimal.Decimal      `json:"revenueThisMonth"`
	ProfitThisMonth      decimal.Decimal      `json:"profitThisMonth"`
	RevenueTrend         []DailyRevenue       `json:"revenueTrend"`
	SalesByCategory      []repo.CategorySales `json:"salesByCategory"`
}

// オーナー向けの集計。コミット済みの注文・商品だけを読む
type DashboardUsecase struct {
	tx    repo.TransactionManager
	clock Clock
}

func NewDashboardUsecase(tx repo.TransactionManager, clock Clock) *DashboardUsecase {
	return &DashboardUsecase{tx: tx, clock: clock}
}

func (u *DashboardUsecase) Summary(ctx context.Context, shopID string, p model.Principal) (DashboardOutput, error) {
	if err := authorizeShop(p, shopID); err != nil {
		return DashboardOutput{}, err
	}
	if !p.IsOwner() {
		return DashboardOutput{}, ownerOnly("only owners can view the dashboard")
	}

	now := u.clock.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	trendStart := today.AddDate(0, 0, -(revenueTrendDays - 1))
	trendEnd := today.AddDate(0, 0, 1)

	var out DashboardOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		d := r.Dashboard()

		totals, err := d.StockTotals(ctx, shopID)
		if err != nil {
			return dbError(err)
		}
		low, err := d.LowStock(ctx, shopID, dashboardLowStockLimit)
		if err != nil {
			return dbError(err)
		}
		lines, err := d.SoldLines(ctx, shopID, minTime(monthStart, trendStart), maxTime(monthEnd, trendEnd))
		if err != nil {
			return dbError(err)
		}
		byCategory, err := d.SalesByCategory(ctx, shopID)
		if err != nil {
			return dbError(err)
		}

		out = DashboardOutput{
			TotalProductTypes:    totals.ProductTypes,
			TotalProductQuantity: totals.Quantity,
			LowStockItems:        low,
			RevenueThisMonth:     decimal.Zero,
			ProfitThisMonth:      decimal.Zero,
			SalesByCategory:      byCategory,
		}
		if out.LowStockItems == nil {
			out.LowStockItems = []model.Product{}
		}
		if out.SalesByCategory == nil {
			out.SalesByCategory = []repo.CategorySales{}
		}

		// 日ごとの売上（注文が無い日も0で埋める）
		daily := make(map[string]decimal.Decimal, revenueTrendDays)
		monthCost := decimal.Zero
		for _, l := range lines {
			at := l.Date.UTC()
			revenue := l.Price.Mul(decimal.NewFromInt(l.Quantity))
			if !at.Before(monthStart) && at.Before(monthEnd) {
				out.UnitsSoldThisMonth += l.Quantity
				out.RevenueThisMonth = out.RevenueThisMonth.Add(revenue)
				monthCost = monthCost.Add(l.Cost.Mul(decimal.NewFromInt(l.Quantity)))
			}
			if !at.Before(trendStart) && at.Before(trendEnd) {
				key := at.Format(time.DateOnly)
				daily[key] = daily[key].Add(revenue)
			}
		}
		out.RevenueThisMonth = out.RevenueThisMonth.Round(2)
		out.ProfitThisMonth = out.RevenueThisMonth.Sub(monthCost).Round(2)

		out.RevenueTrend = make([]DailyRevenue, 0, revenueTrendDays)
		for day := trendStart; day.Before(trendEnd); day = day.AddDate(0, 0, 1) {
			key := day.Format(time.DateOnly)
			out.RevenueTrend = append(out.RevenueTrend, DailyRevenue{Date: key, TotalRevenue: daily[key].Round(2)})
		}
		return nil
	})
	if err != nil {
		return DashboardOutput{}, err
	}
	return out, nil
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
