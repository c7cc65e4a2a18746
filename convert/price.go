package convert

import (
	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// EurPerMWhToCentsPerKWh converts a spot price in EUR/MWh to cents/kWh.
// Decimal arithmetic keeps the two-decimal rendering exact, e.g. 123.45
// EUR/MWh is 12.35 cents/kWh and not 12.34.
func EurPerMWhToCentsPerKWh(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Div(ten)
}
