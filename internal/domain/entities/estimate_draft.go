package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftState is the editing-session state of an estimate draft.
//
//	draft_empty <-> draft_with_items -> submitted
//
// submitted is terminal: from there the estimate store owns the document.
type DraftState string

const (
	DraftStateEmpty     DraftState = "draft_empty"
	DraftStateWithItems DraftState = "draft_with_items"
	DraftStateSubmitted DraftState = "submitted"
)

// EstimateDraft is the in-progress estimate owned by a single salesperson
// session. It keeps a copy of the rate sheet it was opened with so every
// recomputation prices against the same snapshot.
//
// Storage model (Redis):
//   - key: draft:{id}, JSON value, TTL refreshed on every save.
//   - Revision is bumped on every save and checked on every mutation so
//     out-of-order requests are rejected instead of silently applied.
type EstimateDraft struct {
	ID              string          `json:"id"`
	SalespersonID   string          `json:"salesperson_id"`
	CustomerID      string          `json:"customer_id"`
	Date            time.Time       `json:"date"`
	RateSheet       RateSheet       `json:"rate_sheet"`
	Items           []LineItem      `json:"items"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Totals          EstimateTotals  `json:"totals"`
	State           DraftState      `json:"state"`
	Revision        int64           `json:"revision"`
	EstimateID      string          `json:"estimate_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
