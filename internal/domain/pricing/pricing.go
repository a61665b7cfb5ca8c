// Package pricing implements the jewelry estimate pricing engine: rate
// resolution, weight and wastage, making charges, line totals and the
// estimate aggregate.
//
// Every function here is pure over its arguments (Aggregate additionally
// mutates the slice it is given, see its doc). Weights are rounded to 3
// decimal places and money to 2, half away from zero.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	WeightPlaces = 3
	MoneyPlaces  = 2
)

var (
	ErrDiscountOutOfRange = errors.New("discount percent out of range")
	ErrInvalidRate        = errors.New("invalid rate")
)

var (
	hundred = decimal.NewFromInt(100)

	DefaultHandlingCharge     = decimal.NewFromInt(60)
	DefaultTaxPercent         = decimal.NewFromInt(3)
	DefaultMaxDiscountPercent = decimal.NewFromInt(15)
)

func roundWeight(d decimal.Decimal) decimal.Decimal { return d.Round(WeightPlaces) }

func roundMoney(d decimal.Decimal) decimal.Decimal { return d.Round(MoneyPlaces) }

func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}
