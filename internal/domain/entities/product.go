package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Its pricing inputs are authoritative: when a
// salesperson picks a product for an estimate line, these values are copied
// as-is rather than recomputed. A nil HandlingCharge or TaxPercent means the
// showroom default applies.
type Product struct {
	ID                  string            `json:"id"`
	SKU                 string            `json:"sku"`
	Name                string            `json:"name"`
	Category            string            `json:"category"`
	MetalType           MetalType         `json:"metal_type"`
	Purity              string            `json:"purity"`
	PricingMode         PricingMode       `json:"pricing_mode"`
	GrossWeight         decimal.Decimal   `json:"gross_weight"`
	StoneWeight         decimal.Decimal   `json:"stone_weight"`
	StonePrice          decimal.Decimal   `json:"stone_price"`
	WastageBasis        WastageBasis      `json:"wastage_basis"`
	WastagePercent      decimal.Decimal   `json:"wastage_percent"`
	MakingChargeBasis   MakingChargeBasis `json:"making_charge_basis"`
	MakingChargeInput   decimal.Decimal   `json:"making_charge_input"`
	StoredMakingCharges decimal.Decimal   `json:"stored_making_charges"`
	Rate                *decimal.Decimal  `json:"rate,omitempty"`
	FixedAmount         decimal.Decimal   `json:"fixed_amount"`
	HandlingCharge      *decimal.Decimal  `json:"handling_charge,omitempty"`
	TaxPercent          *decimal.Decimal  `json:"tax_percent,omitempty"`
	Images              []string          `json:"images"`
	Active              bool              `json:"active"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// OpenTag is an inventory tag not yet cataloged as a Product. Same pricing
// shape as a product but without images and with a fixed quantity of one.
type OpenTag struct {
	ID                  string            `json:"id"`
	TagNumber           string            `json:"tag_number"`
	Description         string            `json:"description"`
	MetalType           MetalType         `json:"metal_type"`
	Purity              string            `json:"purity"`
	PricingMode         PricingMode       `json:"pricing_mode"`
	GrossWeight         decimal.Decimal   `json:"gross_weight"`
	StoneWeight         decimal.Decimal   `json:"stone_weight"`
	StonePrice          decimal.Decimal   `json:"stone_price"`
	WastageBasis        WastageBasis      `json:"wastage_basis"`
	WastagePercent      decimal.Decimal   `json:"wastage_percent"`
	MakingChargeBasis   MakingChargeBasis `json:"making_charge_basis"`
	MakingChargeInput   decimal.Decimal   `json:"making_charge_input"`
	StoredMakingCharges decimal.Decimal   `json:"stored_making_charges"`
	Rate                *decimal.Decimal  `json:"rate,omitempty"`
	FixedAmount         decimal.Decimal   `json:"fixed_amount"`
	HandlingCharge      *decimal.Decimal  `json:"handling_charge,omitempty"`
	TaxPercent          *decimal.Decimal  `json:"tax_percent,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Search    string
	Category  string
	MetalType MetalType
	Page      int
	Limit     int
}
