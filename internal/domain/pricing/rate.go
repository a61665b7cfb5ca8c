package pricing

import (
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RateOverrides lets the admin pin purities that would otherwise be derived
// from the 22k rate.
type RateOverrides struct {
	Gold24K *decimal.Decimal
	Gold18K *decimal.Decimal
	Gold16K *decimal.Decimal
}

var (
	ratio24Over22 = decimal.NewFromInt(24).Div(decimal.NewFromInt(22))
	ratio18Over24 = decimal.RequireFromString("0.75")
	ratio16Over24 = decimal.NewFromInt(2).Div(decimal.NewFromInt(3))
)

// DeriveRateSheet builds a sheet from the 22k and silver rates:
// 24k = 22k*24/22, 18k = 24k*0.75, 16k = 24k*2/3, each unless overridden.
func DeriveRateSheet(date time.Time, gold22K, silver decimal.Decimal, overrides RateOverrides) (entities.RateSheet, error) {
	if !gold22K.IsPositive() || !silver.IsPositive() {
		return entities.RateSheet{}, ErrInvalidRate
	}
	for _, o := range []*decimal.Decimal{overrides.Gold24K, overrides.Gold18K, overrides.Gold16K} {
		if o != nil && !o.IsPositive() {
			return entities.RateSheet{}, ErrInvalidRate
		}
	}

	gold24K := roundMoney(gold22K.Mul(ratio24Over22))
	if overrides.Gold24K != nil {
		gold24K = *overrides.Gold24K
	}
	gold18K := roundMoney(gold24K.Mul(ratio18Over24))
	if overrides.Gold18K != nil {
		gold18K = *overrides.Gold18K
	}
	gold16K := roundMoney(gold24K.Mul(ratio16Over24))
	if overrides.Gold16K != nil {
		gold16K = *overrides.Gold16K
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return entities.RateSheet{
		ID:            entities.RateSheetID(day),
		EffectiveDate: day,
		Gold24K:       gold24K,
		Gold22K:       gold22K,
		Gold18K:       gold18K,
		Gold16K:       gold16K,
		Silver:        silver,
	}, nil
}

// RateResolution is the rate applied to a line and where it came from.
type RateResolution struct {
	Rate   decimal.Decimal
	Source entities.RateSource
}

// Fallback reports whether the rate was guessed rather than matched.
func (r RateResolution) Fallback() bool {
	return r.Source == entities.RateSourceFallback
}

// Resolved reports whether a usable (non-zero) rate was found.
func (r RateResolution) Resolved() bool {
	return r.Source != entities.RateSourceUnresolved && r.Rate.IsPositive()
}

// ResolveRate picks the per-gram rate for a line.
//
// An explicit positive override always wins. Gold purities are matched by
// substring in the order 24, 22, 18, 16; anything else falls back to the 22k
// rate and is reported as such. Silver ignores purity. Other metals resolve
// to zero and must be treated as unresolved by the caller.
func ResolveRate(metal entities.MetalType, purity string, sheet entities.RateSheet, override *decimal.Decimal) RateResolution {
	if override != nil && override.IsPositive() {
		return RateResolution{Rate: *override, Source: entities.RateSourceOverride}
	}

	switch metal {
	case entities.MetalGold:
		switch {
		case strings.Contains(purity, "24"):
			return RateResolution{Rate: sheet.Gold24K, Source: entities.RateSourceSheet}
		case strings.Contains(purity, "22"):
			return RateResolution{Rate: sheet.Gold22K, Source: entities.RateSourceSheet}
		case strings.Contains(purity, "18"):
			return RateResolution{Rate: sheet.Gold18K, Source: entities.RateSourceSheet}
		case strings.Contains(purity, "16"):
			return RateResolution{Rate: sheet.Gold16K, Source: entities.RateSourceSheet}
		default:
			return RateResolution{Rate: sheet.Gold22K, Source: entities.RateSourceFallback}
		}
	case entities.MetalSilver:
		return RateResolution{Rate: sheet.Silver, Source: entities.RateSourceSheet}
	default:
		return RateResolution{Rate: decimal.Zero, Source: entities.RateSourceUnresolved}
	}
}
