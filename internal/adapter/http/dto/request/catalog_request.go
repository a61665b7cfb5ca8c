package request

import (
	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PricingInputs is the pricing shape shared by products, open tags and manual
// lines. Omitted handling charge and tax percent take the showroom defaults.
type PricingInputs struct {
	MetalType           string           `json:"metal_type" validate:"required,oneof=gold silver other"`
	Purity              string           `json:"purity" validate:"max=10"`
	PricingMode         string           `json:"pricing_mode" validate:"required,oneof=by_weight fixed"`
	GrossWeight         decimal.Decimal  `json:"gross_weight" validate:"gte=0"`
	StoneWeight         decimal.Decimal  `json:"stone_weight" validate:"gte=0"`
	StonePrice          decimal.Decimal  `json:"stone_price" validate:"gte=0"`
	WastageBasis        string           `json:"wastage_basis" validate:"omitempty,oneof=gross_weight weight_before_wastage"`
	WastagePercent      decimal.Decimal  `json:"wastage_percent" validate:"gte=0"`
	MakingChargeBasis   string           `json:"making_charge_basis" validate:"omitempty,oneof=per_gram per_piece percent_of_rate"`
	MakingChargeInput   decimal.Decimal  `json:"making_charge_input" validate:"gte=0"`
	StoredMakingCharges decimal.Decimal  `json:"stored_making_charges" validate:"gte=0"`
	Rate                *decimal.Decimal `json:"rate,omitempty" validate:"omitempty,gte=0"`
	FixedAmount         decimal.Decimal  `json:"fixed_amount" validate:"gte=0"`
	HandlingCharge      *decimal.Decimal `json:"handling_charge,omitempty" validate:"omitempty,gte=0"`
	TaxPercent          *decimal.Decimal `json:"tax_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (p PricingInputs) wastageBasis() entities.WastageBasis {
	if p.WastageBasis == "" {
		return entities.WastageOnGrossWeight
	}
	return entities.WastageBasis(p.WastageBasis)
}

func (p PricingInputs) makingChargeBasis() entities.MakingChargeBasis {
	if p.MakingChargeBasis == "" {
		return entities.MakingChargePerGram
	}
	return entities.MakingChargeBasis(p.MakingChargeBasis)
}

type CreateProductRequest struct {
	SKU      string   `json:"sku" validate:"required,max=40"`
	Name     string   `json:"name" validate:"required,max=160"`
	Category string   `json:"category" validate:"required,max=60"`
	Images   []string `json:"images" validate:"max=10,dive,url"`
	PricingInputs
}

func (r CreateProductRequest) ToEntity() entities.Product {
	return entities.Product{
		SKU:                 r.SKU,
		Name:                r.Name,
		Category:            r.Category,
		MetalType:           entities.MetalType(r.MetalType),
		Purity:              r.Purity,
		PricingMode:         entities.PricingMode(r.PricingMode),
		GrossWeight:         r.GrossWeight,
		StoneWeight:         r.StoneWeight,
		StonePrice:          r.StonePrice,
		WastageBasis:        r.wastageBasis(),
		WastagePercent:      r.WastagePercent,
		MakingChargeBasis:   r.makingChargeBasis(),
		MakingChargeInput:   r.MakingChargeInput,
		StoredMakingCharges: r.StoredMakingCharges,
		Rate:                r.Rate,
		FixedAmount:         r.FixedAmount,
		HandlingCharge:      r.HandlingCharge,
		TaxPercent:          r.TaxPercent,
		Images:              r.Images,
	}
}

type CreateOpenTagRequest struct {
	TagNumber   string `json:"tag_number" validate:"required,max=40"`
	Description string `json:"description" validate:"max=200"`
	PricingInputs
}

func (r CreateOpenTagRequest) ToEntity() entities.OpenTag {
	return entities.OpenTag{
		TagNumber:           r.TagNumber,
		Description:         r.Description,
		MetalType:           entities.MetalType(r.MetalType),
		Purity:              r.Purity,
		PricingMode:         entities.PricingMode(r.PricingMode),
		GrossWeight:         r.GrossWeight,
		StoneWeight:         r.StoneWeight,
		StonePrice:          r.StonePrice,
		WastageBasis:        r.wastageBasis(),
		WastagePercent:      r.WastagePercent,
		MakingChargeBasis:   r.makingChargeBasis(),
		MakingChargeInput:   r.MakingChargeInput,
		StoredMakingCharges: r.StoredMakingCharges,
		Rate:                r.Rate,
		FixedAmount:         r.FixedAmount,
		HandlingCharge:      r.HandlingCharge,
		TaxPercent:          r.TaxPercent,
	}
}

// ProductListQuery is bound from /products?search=&category=&metal_type=&page=&limit=.
type ProductListQuery struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	MetalType string `form:"metal_type"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

func (q ProductListQuery) ToFilter() entities.ProductFilter {
	return entities.ProductFilter{
		Search:    q.Search,
		Category:  q.Category,
		MetalType: entities.MetalType(q.MetalType),
		Page:      q.Page,
		Limit:     q.Limit,
	}
}
