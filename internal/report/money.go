package report

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money formats an amount rounded half away from zero to two decimals.
func Money(v float64) string {
	return Quantity(v, 2)
}

// Quantity formats a physical quantity with the given number of decimals.
func Quantity(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func roundMoney(v float64) float64 {
	return round(v, 2)
}

func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
