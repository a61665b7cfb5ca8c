package pricing

import (
	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PricingContext carries everything a recomputation needs besides the line
// itself. Callers build it explicitly; nothing is read from ambient state.
type PricingContext struct {
	RateSheet             entities.RateSheet
	DefaultHandlingCharge decimal.Decimal
	DefaultTaxPercent     decimal.Decimal
	MaxDiscountPercent    decimal.Decimal
}

// NewPricingContext returns a context for sheet with the showroom defaults.
func NewPricingContext(sheet entities.RateSheet) PricingContext {
	return PricingContext{
		RateSheet:             sheet,
		DefaultHandlingCharge: DefaultHandlingCharge,
		DefaultTaxPercent:     DefaultTaxPercent,
		MaxDiscountPercent:    DefaultMaxDiscountPercent,
	}
}

// maxDiscount is the configured limit, never above the showroom cap of 15%.
// A limit of zero disables discounts.
func (pc PricingContext) maxDiscount() decimal.Decimal {
	if pc.MaxDiscountPercent.IsNegative() || pc.MaxDiscountPercent.GreaterThan(DefaultMaxDiscountPercent) {
		return DefaultMaxDiscountPercent
	}
	return pc.MaxDiscountPercent
}

// HandlingChargeOr returns v, or the context default when v is nil.
func (pc PricingContext) HandlingChargeOr(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return pc.DefaultHandlingCharge
	}
	return *v
}

// TaxPercentOr returns v, or the context default when v is nil.
func (pc PricingContext) TaxPercentOr(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return pc.DefaultTaxPercent
	}
	return *v
}

// Recompute derives every computed field of item from its inputs.
//
// The chain runs rate -> weights -> rate amount -> making charges -> line
// total. Calling it twice on the same inputs yields the same line.
func Recompute(item entities.LineItem, pc PricingContext) entities.LineItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	res := ResolveRate(item.MetalType, item.Purity, pc.RateSheet, item.RateOverride)
	item.Rate = res.Rate
	item.RateSource = res.Source

	w := ComputeWeights(item.GrossWeight, item.StoneWeight, item.WastageBasis, item.WastagePercent)
	item.WeightBeforeWastage = w.BeforeWastage
	item.WastageWeight = w.Wastage
	item.TotalWeight = w.Total

	rateAmount := RateAmount(item.Rate, w.Total, item.PricingMode, item.FixedAmount)
	mc := ComputeMakingCharges(item.MakingChargeBasis, item.MakingChargeInput, w.Total, rateAmount, item.StoredMakingCharges)
	item.MakingCharges = mc.Amount
	item.PerGramMakingRate = mc.PerGramRate

	lt := ComputeLineTotal(LineTotalInput{
		Rate:           item.Rate,
		TotalWeight:    w.Total,
		PricingMode:    item.PricingMode,
		FixedAmount:    item.FixedAmount,
		StonePrice:     item.StonePrice,
		MakingCharges:  mc.Amount,
		HandlingCharge: item.HandlingCharge,
		Discount:       item.Discount,
		TaxPercent:     item.TaxPercent,
	})
	item.RateAmount = lt.RateAmount
	item.TaxableAmount = lt.TaxableAmount
	item.TaxAmount = lt.TaxAmount
	item.TotalPrice = lt.TotalPrice
	item.NegativeTaxable = lt.NegativeTaxable

	return item
}
