package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round1 округляет до одного знака после запятой (half away from zero)
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Percent1 возвращает part/whole*100, округлённый до одного знака.
// Считается в decimal, чтобы 25/60 давало ровно 58.3 без артефактов float.
func Percent1(part, whole int64) float64 {
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(whole)).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// IsFinite - не NaN и не ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
