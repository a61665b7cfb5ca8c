package response

import (
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DraftResponse always carries the revision the client must echo back on its
// next mutation.
type DraftResponse struct {
	ID              string             `json:"id"`
	SalespersonID   string             `json:"salesperson_id"`
	CustomerID      string             `json:"customer_id"`
	Date            string             `json:"date"`
	RateSheet       RateSheetResponse  `json:"rate_sheet"`
	Items           []LineItemResponse `json:"items"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	Totals          TotalsResponse     `json:"totals"`
	State           string             `json:"state"`
	Revision        int64              `json:"revision"`
	EstimateID      string             `json:"estimate_id,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromDraft(d entities.EstimateDraft) DraftResponse {
	return DraftResponse{
		ID:              d.ID,
		SalespersonID:   d.SalespersonID,
		CustomerID:      d.CustomerID,
		Date:            d.Date.Format(dateLayout),
		RateSheet:       FromRateSheet(d.RateSheet),
		Items:           fromLineItems(d.Items),
		DiscountPercent: d.DiscountPercent,
		Totals:          FromTotals(d.Totals),
		State:           string(d.State),
		Revision:        d.Revision,
		EstimateID:      d.EstimateID,
		UpdatedAt:       d.UpdatedAt,
	}
}
