package pricing

import (
	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineTotalInput groups the inputs of a single line's price roll-up.
type LineTotalInput struct {
	Rate           decimal.Decimal
	TotalWeight    decimal.Decimal
	PricingMode    entities.PricingMode
	FixedAmount    decimal.Decimal
	StonePrice     decimal.Decimal
	MakingCharges  decimal.Decimal
	HandlingCharge decimal.Decimal
	Discount       decimal.Decimal
	TaxPercent     decimal.Decimal
}

// LineTotal is the priced result of one line.
type LineTotal struct {
	RateAmount      decimal.Decimal
	TaxableAmount   decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalPrice      decimal.Decimal
	NegativeTaxable bool
}

// RateAmount is the metal value of a line: rate * weight when priced by
// weight, otherwise the entered fixed amount.
func RateAmount(rate, totalWeight decimal.Decimal, mode entities.PricingMode, fixedAmount decimal.Decimal) decimal.Decimal {
	if mode == entities.PricingFixed {
		return roundMoney(fixedAmount)
	}
	return roundMoney(rate.Mul(totalWeight))
}

// ComputeLineTotal rolls a line up into taxable amount, tax and total.
//
// A discount larger than the chargeable amount produces a negative taxable
// amount. It is kept as-is and flagged with NegativeTaxable; callers decide
// whether to accept it.
func ComputeLineTotal(in LineTotalInput) LineTotal {
	rateAmount := RateAmount(in.Rate, in.TotalWeight, in.PricingMode, in.FixedAmount)

	taxable := roundMoney(rateAmount.
		Add(in.StonePrice).
		Add(in.MakingCharges).
		Add(in.HandlingCharge).
		Sub(in.Discount))
	tax := roundMoney(percentOf(taxable, in.TaxPercent))

	return LineTotal{
		RateAmount:      rateAmount,
		TaxableAmount:   taxable,
		TaxAmount:       tax,
		TotalPrice:      taxable.Add(tax),
		NegativeTaxable: taxable.IsNegative(),
	}
}
