package response

import (
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	ID                  string           `json:"id"`
	Source              string           `json:"source"`
	SourceRef           string           `json:"source_ref,omitempty"`
	Name                string           `json:"name"`
	Images              []string         `json:"images,omitempty"`
	MetalType           string           `json:"metal_type"`
	Purity              string           `json:"purity"`
	PricingMode         string           `json:"pricing_mode"`
	Quantity            int              `json:"quantity"`
	QuantityEditable    bool             `json:"quantity_editable"`
	GrossWeight         decimal.Decimal  `json:"gross_weight"`
	StoneWeight         decimal.Decimal  `json:"stone_weight"`
	StonePrice          decimal.Decimal  `json:"stone_price"`
	WastageBasis        string           `json:"wastage_basis"`
	WastagePercent      decimal.Decimal  `json:"wastage_percent"`
	MakingChargeBasis   string           `json:"making_charge_basis"`
	MakingChargeInput   decimal.Decimal  `json:"making_charge_input"`
	RateOverride        *decimal.Decimal `json:"rate_override,omitempty"`
	FixedAmount         decimal.Decimal  `json:"fixed_amount"`
	HandlingCharge      decimal.Decimal  `json:"handling_charge"`
	TaxPercent          decimal.Decimal  `json:"tax_percent"`
	Discount            decimal.Decimal  `json:"discount"`
	Rate                decimal.Decimal  `json:"rate"`
	RateSource          string           `json:"rate_source"`
	WeightBeforeWastage decimal.Decimal  `json:"weight_before_wastage"`
	WastageWeight       decimal.Decimal  `json:"wastage_weight"`
	TotalWeight         decimal.Decimal  `json:"total_weight"`
	RateAmount          decimal.Decimal  `json:"rate_amount"`
	MakingCharges       decimal.Decimal  `json:"making_charges"`
	PerGramMakingRate   decimal.Decimal  `json:"per_gram_making_rate"`
	TaxableAmount       decimal.Decimal  `json:"taxable_amount"`
	TaxAmount           decimal.Decimal  `json:"tax_amount"`
	TotalPrice          decimal.Decimal  `json:"total_price"`
	NegativeTaxable     bool             `json:"negative_taxable,omitempty"`
}

type TotalsResponse struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TaxableAmount    decimal.Decimal `json:"taxable_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	NetPayableAmount decimal.Decimal `json:"net_payable_amount"`
}

type EstimateResponse struct {
	ID              string             `json:"id"`
	Number          int64              `json:"number"`
	DraftID         string             `json:"draft_id"`
	CustomerID      string             `json:"customer_id"`
	SalespersonID   string             `json:"salesperson_id"`
	Date            string             `json:"date"`
	RateSheetID     string             `json:"rate_sheet_id"`
	Items           []LineItemResponse `json:"items"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	Totals          TotalsResponse     `json:"totals"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                  li.ID,
		Source:              string(li.Source),
		SourceRef:           li.SourceRef,
		Name:                li.Name,
		Images:              li.Images,
		MetalType:           string(li.MetalType),
		Purity:              li.Purity,
		PricingMode:         string(li.PricingMode),
		Quantity:            li.Quantity,
		QuantityEditable:    li.QuantityEditable(),
		GrossWeight:         li.GrossWeight,
		StoneWeight:         li.StoneWeight,
		StonePrice:          li.StonePrice,
		WastageBasis:        string(li.WastageBasis),
		WastagePercent:      li.WastagePercent,
		MakingChargeBasis:   string(li.MakingChargeBasis),
		MakingChargeInput:   li.MakingChargeInput,
		RateOverride:        li.RateOverride,
		FixedAmount:         li.FixedAmount,
		HandlingCharge:      li.HandlingCharge,
		TaxPercent:          li.TaxPercent,
		Discount:            li.Discount,
		Rate:                li.Rate,
		RateSource:          string(li.RateSource),
		WeightBeforeWastage: li.WeightBeforeWastage,
		WastageWeight:       li.WastageWeight,
		TotalWeight:         li.TotalWeight,
		RateAmount:          li.RateAmount,
		MakingCharges:       li.MakingCharges,
		PerGramMakingRate:   li.PerGramMakingRate,
		TaxableAmount:       li.TaxableAmount,
		TaxAmount:           li.TaxAmount,
		TotalPrice:          li.TotalPrice,
		NegativeTaxable:     li.NegativeTaxable,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

func FromTotals(t entities.EstimateTotals) TotalsResponse {
	return TotalsResponse{
		TotalAmount:      t.TotalAmount,
		DiscountAmount:   t.DiscountAmount,
		TaxableAmount:    t.TaxableAmount,
		TaxAmount:        t.TaxAmount,
		NetAmount:        t.NetAmount,
		NetPayableAmount: t.NetPayableAmount,
	}
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		Number:          e.Number,
		DraftID:         e.DraftID,
		CustomerID:      e.CustomerID,
		SalespersonID:   e.SalespersonID,
		Date:            e.Date.Format(dateLayout),
		RateSheetID:     e.RateSheetID,
		Items:           fromLineItems(e.Items),
		DiscountPercent: e.DiscountPercent,
		Totals:          FromTotals(e.Totals),
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}
