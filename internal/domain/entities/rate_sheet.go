package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSheet is the metal rate snapshot (currency per gram) valid from EffectiveDate
// until a newer sheet is published.
//
// Storage model (DynamoDB):
//   - PK: pk ("RATES")
//   - SK: effective_date (YYYY-MM-DD), so "latest sheet <= date" is a single Query.
//
// A sheet is immutable once issued.
type RateSheet struct {
	ID            string          `json:"id"`
	EffectiveDate time.Time       `json:"effective_date"`
	Gold24K       decimal.Decimal `json:"gold_24k"`
	Gold22K       decimal.Decimal `json:"gold_22k"`
	Gold18K       decimal.Decimal `json:"gold_18k"`
	Gold16K       decimal.Decimal `json:"gold_16k"`
	Silver        decimal.Decimal `json:"silver"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

const RateSheetDateLayout = "2006-01-02"

// RateSheetID returns the identity of the sheet for a given date.
func RateSheetID(date time.Time) string {
	return date.UTC().Format(RateSheetDateLayout)
}
