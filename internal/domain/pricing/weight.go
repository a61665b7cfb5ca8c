package pricing

import (
	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Weights are the derived weights of a line, in grams.
type Weights struct {
	BeforeWastage decimal.Decimal
	Wastage       decimal.Decimal
	Total         decimal.Decimal
}

// ComputeWeights derives net weight, wastage and the weight billed at the
// metal rate. Net weight never goes below zero, even when the stone weight
// exceeds the gross weight.
func ComputeWeights(gross, stone decimal.Decimal, basis entities.WastageBasis, wastagePercent decimal.Decimal) Weights {
	before := gross.Sub(stone)
	if before.IsNegative() {
		before = decimal.Zero
	}
	before = roundWeight(before)

	var wastage decimal.Decimal
	switch basis {
	case entities.WastageOnGrossWeight:
		wastage = roundWeight(percentOf(gross, wastagePercent))
	case entities.WastageOnWeightBeforeWastage:
		wastage = roundWeight(percentOf(before, wastagePercent))
	default:
		wastage = decimal.Zero
	}

	return Weights{
		BeforeWastage: before,
		Wastage:       wastage,
		Total:         roundWeight(before.Add(wastage)),
	}
}
