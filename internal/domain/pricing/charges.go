package pricing

import (
	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MakingCharges is the fabrication charge of a line. PerGramRate is for
// display only; it stays zero when the total weight is zero.
type MakingCharges struct {
	Amount      decimal.Decimal
	PerGramRate decimal.Decimal
}

// ComputeMakingCharges applies one of the three making-charge bases.
//
//   - per_gram: input * total weight
//   - percent_of_rate: input% of the rate amount
//   - per_piece: the stored absolute amount, per-gram rate back-computed
func ComputeMakingCharges(basis entities.MakingChargeBasis, input, totalWeight, rateAmount, stored decimal.Decimal) MakingCharges {
	var mc MakingCharges
	switch basis {
	case entities.MakingChargePerGram:
		mc.Amount = roundMoney(input.Mul(totalWeight))
		mc.PerGramRate = roundMoney(input)
		return mc
	case entities.MakingChargePercentOfRate:
		mc.Amount = roundMoney(percentOf(rateAmount, input))
	case entities.MakingChargePerPiece:
		mc.Amount = roundMoney(stored)
	default:
		return MakingCharges{Amount: decimal.Zero, PerGramRate: decimal.Zero}
	}

	if totalWeight.IsPositive() {
		mc.PerGramRate = roundMoney(mc.Amount.Div(totalWeight))
	} else {
		mc.PerGramRate = decimal.Zero
	}
	return mc
}
