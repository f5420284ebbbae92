package usecase

import (
	"github.com/shopspring/decimal"
)

// numeric(12,2) に入る上限
var maxMoney = decimal.RequireFromString("9999999999.99")

// 金額は0以上・小数2桁まで・列の範囲内
func checkMoney(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalidInput(field + " must be >= 0")
	}
	if !d.Equal(d.Truncate(2)) {
		return invalidInput(field + " must have at most 2 decimal places")
	}
	if d.GreaterThan(maxMoney) {
		return invalidInput(field + " is too large")
	}
	return nil
}
