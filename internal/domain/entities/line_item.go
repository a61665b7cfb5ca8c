package entities

import "github.com/shopspring/decimal"

type MetalType string

const (
	MetalGold   MetalType = "gold"
	MetalSilver MetalType = "silver"
	MetalOther  MetalType = "other"
)

type PricingMode string

const (
	PricingByWeight PricingMode = "by_weight"
	PricingFixed    PricingMode = "fixed"
)

type WastageBasis string

const (
	WastageOnGrossWeight         WastageBasis = "gross_weight"
	WastageOnWeightBeforeWastage WastageBasis = "weight_before_wastage"
)

type MakingChargeBasis string

const (
	MakingChargePerGram       MakingChargeBasis = "per_gram"
	MakingChargePerPiece      MakingChargeBasis = "per_piece"
	MakingChargePercentOfRate MakingChargeBasis = "percent_of_rate"
)

// ItemSource tells where a line item's inputs came from. Catalog products are
// the only source whose quantity can be edited.
type ItemSource string

const (
	ItemSourceProduct ItemSource = "product"
	ItemSourceOpenTag ItemSource = "open_tag"
	ItemSourceManual  ItemSource = "manual"
)

// RateSource records how the applied rate was obtained.
type RateSource string

const (
	RateSourceOverride   RateSource = "override"
	RateSourceSheet      RateSource = "sheet"
	RateSourceFallback   RateSource = "fallback_22k"
	RateSourceUnresolved RateSource = "unresolved"
)

// LineItem is one product/quantity on an estimate.
//
// Input fields are set by the salesperson or copied from the catalog. Derived
// fields (the block after Discount) are only ever written by pricing.Recompute
// and must never be edited independently.
type LineItem struct {
	ID        string     `json:"id"`
	Source    ItemSource `json:"source"`
	SourceRef string     `json:"source_ref,omitempty"`
	Name      string     `json:"name"`
	Images    []string   `json:"images,omitempty"`

	MetalType   MetalType   `json:"metal_type"`
	Purity      string      `json:"purity"`
	PricingMode PricingMode `json:"pricing_mode"`
	Quantity    int         `json:"quantity"`

	GrossWeight decimal.Decimal `json:"gross_weight"`
	StoneWeight decimal.Decimal `json:"stone_weight"`
	StonePrice  decimal.Decimal `json:"stone_price"`

	WastageBasis   WastageBasis    `json:"wastage_basis"`
	WastagePercent decimal.Decimal `json:"wastage_percent"`

	MakingChargeBasis   MakingChargeBasis `json:"making_charge_basis"`
	MakingChargeInput   decimal.Decimal   `json:"making_charge_input"`
	StoredMakingCharges decimal.Decimal   `json:"stored_making_charges"`

	RateOverride   *decimal.Decimal `json:"rate_override,omitempty"`
	FixedAmount    decimal.Decimal  `json:"fixed_amount"`
	HandlingCharge decimal.Decimal  `json:"handling_charge"`
	TaxPercent     decimal.Decimal  `json:"tax_percent"`
	Discount       decimal.Decimal  `json:"discount"`

	Rate                decimal.Decimal `json:"rate"`
	RateSource          RateSource      `json:"rate_source"`
	WeightBeforeWastage decimal.Decimal `json:"weight_before_wastage"`
	WastageWeight       decimal.Decimal `json:"wastage_weight"`
	TotalWeight         decimal.Decimal `json:"total_weight"`
	RateAmount          decimal.Decimal `json:"rate_amount"`
	MakingCharges       decimal.Decimal `json:"making_charges"`
	PerGramMakingRate   decimal.Decimal `json:"per_gram_making_rate"`
	TaxableAmount       decimal.Decimal `json:"taxable_amount"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	NegativeTaxable     bool            `json:"negative_taxable,omitempty"`
}

// QuantityEditable reports whether the quantity of this line may be changed.
func (li LineItem) QuantityEditable() bool {
	return li.Source == ItemSourceProduct
}

// EstimateTotals are the aggregate amounts of an estimate.
type EstimateTotals struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TaxableAmount    decimal.Decimal `json:"taxable_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	NetPayableAmount decimal.Decimal `json:"net_payable_amount"`
}
