package pricing

import (
	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ValidateDiscountPercent accepts 0 <= pct <= limit.
func ValidateDiscountPercent(pct, limit decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(limit) {
		return ErrDiscountOutOfRange
	}
	return nil
}

// Aggregate prices an estimate.
//
// The estimate discount is a percentage of making charges. Applying it
// rewrites every line in items: each line's Discount becomes its own share
// (making charges * pct / 100) and its taxable, tax and total are recomputed.
// On a validation error items are left untouched.
//
// DiscountAmount is the sum of the rounded line discounts rather than the
// rounded percentage of the summed making charges, so the line totals always
// add up to NetAmount. The two can differ by a few paise on large estimates.
func Aggregate(items []entities.LineItem, discountPercent decimal.Decimal, pc PricingContext) (entities.EstimateTotals, error) {
	if err := ValidateDiscountPercent(discountPercent, pc.maxDiscount()); err != nil {
		return entities.EstimateTotals{}, err
	}

	var (
		totalAmount    = decimal.Zero
		discountAmount = decimal.Zero
		taxAmount      = decimal.Zero
	)
	for i := range items {
		line := Recompute(items[i], pc)
		line.Discount = roundMoney(percentOf(line.MakingCharges, discountPercent))
		line = Recompute(line, pc)
		items[i] = line

		totalAmount = totalAmount.
			Add(line.RateAmount).
			Add(line.StonePrice).
			Add(line.MakingCharges).
			Add(line.HandlingCharge)
		discountAmount = discountAmount.Add(line.Discount)
		taxAmount = taxAmount.Add(line.TaxAmount)
	}

	taxable := roundMoney(totalAmount.Sub(discountAmount))
	net := roundMoney(taxable.Add(taxAmount))

	return entities.EstimateTotals{
		TotalAmount:      roundMoney(totalAmount),
		DiscountAmount:   roundMoney(discountAmount),
		TaxableAmount:    taxable,
		TaxAmount:        roundMoney(taxAmount),
		NetAmount:        net,
		NetPayableAmount: net.Round(0),
	}, nil
}
