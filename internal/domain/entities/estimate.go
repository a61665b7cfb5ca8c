package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a submitted estimate.
//
// Domain notes:
//   - An estimate enters the store as pending when a draft is submitted.
//   - The showroom accepts or rejects it; an accepted estimate becomes an
//     order once it is paid.

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusOrdered  EstimateStatus = "ordered"
)

var estimateTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusPending:  {EstimateStatusAccepted, EstimateStatusRejected},
	EstimateStatusAccepted: {EstimateStatusOrdered},
}

// CanTransitionTo reports whether the status machine allows s -> next.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	for _, allowed := range estimateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Estimate is the finalized price quotation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (number-index): number
//
// Monetary representation:
//   - Items carry their final computed fields; Totals are the aggregate at submission.
type Estimate struct {
	ID              string          `json:"id"`
	Number          int64           `json:"number"`
	DraftID         string          `json:"draft_id"`
	CustomerID      string          `json:"customer_id"`
	SalespersonID   string          `json:"salesperson_id"`
	Date            time.Time       `json:"date"`
	RateSheetID     string          `json:"rate_sheet_id"`
	Items           []LineItem      `json:"items"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Totals          EstimateTotals  `json:"totals"`
	Status          EstimateStatus  `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
