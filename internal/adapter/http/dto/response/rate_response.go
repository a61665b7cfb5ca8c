package response

import (
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RateSheetResponse struct {
	ID            string          `json:"id"`
	EffectiveDate string          `json:"effective_date"`
	Gold24K       decimal.Decimal `json:"gold_24k"`
	Gold22K       decimal.Decimal `json:"gold_22k"`
	Gold18K       decimal.Decimal `json:"gold_18k"`
	Gold16K       decimal.Decimal `json:"gold_16k"`
	Silver        decimal.Decimal `json:"silver"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func FromRateSheet(s entities.RateSheet) RateSheetResponse {
	return RateSheetResponse{
		ID:            s.ID,
		EffectiveDate: s.EffectiveDate.Format(dateLayout),
		Gold24K:       s.Gold24K,
		Gold22K:       s.Gold22K,
		Gold18K:       s.Gold18K,
		Gold16K:       s.Gold16K,
		Silver:        s.Silver,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
	}
}
