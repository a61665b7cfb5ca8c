package request

import (
	"time"

	"jiyajewellery/internal/usecase"

	"github.com/shopspring/decimal"
)

// PublishRatesRequest is the admin's daily rate entry. 24K, 18K and 16K are
// derived from 22K when omitted.
type PublishRatesRequest struct {
	EffectiveDate string           `json:"effective_date"`
	Gold22K       decimal.Decimal  `json:"gold_22k" validate:"gt=0"`
	Silver        decimal.Decimal  `json:"silver" validate:"gt=0"`
	Gold24K       *decimal.Decimal `json:"gold_24k,omitempty" validate:"omitempty,gt=0"`
	Gold18K       *decimal.Decimal `json:"gold_18k,omitempty" validate:"omitempty,gt=0"`
	Gold16K       *decimal.Decimal `json:"gold_16k,omitempty" validate:"omitempty,gt=0"`
}

func (r PublishRatesRequest) ToCommand(publishedBy string, loc *time.Location) (usecase.PublishRatesCommand, error) {
	date, err := ParseDate(r.EffectiveDate, loc)
	if err != nil {
		return usecase.PublishRatesCommand{}, err
	}
	return usecase.PublishRatesCommand{
		EffectiveDate: date,
		Gold22K:       r.Gold22K,
		Silver:        r.Silver,
		Gold24K:       r.Gold24K,
		Gold18K:       r.Gold18K,
		Gold16K:       r.Gold16K,
		PublishedBy:   publishedBy,
	}, nil
}
