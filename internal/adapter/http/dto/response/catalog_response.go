package response

import (
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID                string           `json:"id"`
	SKU               string           `json:"sku"`
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	MetalType         string           `json:"metal_type"`
	Purity            string           `json:"purity"`
	PricingMode       string           `json:"pricing_mode"`
	GrossWeight       decimal.Decimal  `json:"gross_weight"`
	StoneWeight       decimal.Decimal  `json:"stone_weight"`
	StonePrice        decimal.Decimal  `json:"stone_price"`
	WastageBasis      string           `json:"wastage_basis"`
	WastagePercent    decimal.Decimal  `json:"wastage_percent"`
	MakingChargeBasis string           `json:"making_charge_basis"`
	MakingChargeInput decimal.Decimal  `json:"making_charge_input"`
	Rate              *decimal.Decimal `json:"rate,omitempty"`
	FixedAmount       decimal.Decimal  `json:"fixed_amount"`
	HandlingCharge    *decimal.Decimal `json:"handling_charge,omitempty"`
	TaxPercent        *decimal.Decimal `json:"tax_percent,omitempty"`
	Images            []string         `json:"images"`
	CreatedAt         time.Time        `json:"created_at"`
}

type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type OpenTagResponse struct {
	ID                string           `json:"id"`
	TagNumber         string           `json:"tag_number"`
	Description       string           `json:"description"`
	MetalType         string           `json:"metal_type"`
	Purity            string           `json:"purity"`
	PricingMode       string           `json:"pricing_mode"`
	GrossWeight       decimal.Decimal  `json:"gross_weight"`
	StoneWeight       decimal.Decimal  `json:"stone_weight"`
	StonePrice        decimal.Decimal  `json:"stone_price"`
	WastageBasis      string           `json:"wastage_basis"`
	WastagePercent    decimal.Decimal  `json:"wastage_percent"`
	MakingChargeBasis string           `json:"making_charge_basis"`
	MakingChargeInput decimal.Decimal  `json:"making_charge_input"`
	Rate              *decimal.Decimal `json:"rate,omitempty"`
	FixedAmount       decimal.Decimal  `json:"fixed_amount"`
	HandlingCharge    *decimal.Decimal `json:"handling_charge,omitempty"`
	TaxPercent        *decimal.Decimal `json:"tax_percent,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Category:          p.Category,
		MetalType:         string(p.MetalType),
		Purity:            p.Purity,
		PricingMode:       string(p.PricingMode),
		GrossWeight:       p.GrossWeight,
		StoneWeight:       p.StoneWeight,
		StonePrice:        p.StonePrice,
		WastageBasis:      string(p.WastageBasis),
		WastagePercent:    p.WastagePercent,
		MakingChargeBasis: string(p.MakingChargeBasis),
		MakingChargeInput: p.MakingChargeInput,
		Rate:              p.Rate,
		FixedAmount:       p.FixedAmount,
		HandlingCharge:    p.HandlingCharge,
		TaxPercent:        p.TaxPercent,
		Images:            images,
		CreatedAt:         p.CreatedAt,
	}
}

func FromProductPage(list []entities.Product, total int64, page, limit int) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, FromProduct(p))
	}
	return ProductListResponse{Items: items, Total: total, Page: page, Limit: limit}
}

func FromOpenTag(t entities.OpenTag) OpenTagResponse {
	return OpenTagResponse{
		ID:                t.ID,
		TagNumber:         t.TagNumber,
		Description:       t.Description,
		MetalType:         string(t.MetalType),
		Purity:            t.Purity,
		PricingMode:       string(t.PricingMode),
		GrossWeight:       t.GrossWeight,
		StoneWeight:       t.StoneWeight,
		StonePrice:        t.StonePrice,
		WastageBasis:      string(t.WastageBasis),
		WastagePercent:    t.WastagePercent,
		MakingChargeBasis: string(t.MakingChargeBasis),
		MakingChargeInput: t.MakingChargeInput,
		Rate:              t.Rate,
		FixedAmount:       t.FixedAmount,
		HandlingCharge:    t.HandlingCharge,
		TaxPercent:        t.TaxPercent,
		CreatedAt:         t.CreatedAt,
	}
}
