package request

import (
	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateDraftRequest struct {
	CustomerID string `json:"customer_id" validate:"max=64"`
	Date       string `json:"date"`
}

// RevisionRequest is embedded by every draft mutation: the draft revision
// the client last saw.
type RevisionRequest struct {
	Revision int64 `json:"revision" validate:"gt=0"`
}

// ManualLineRequest is a hand-entered line. It takes the same pricing fields
// as a catalog product; a rate pins the line's rate per gram and omitted
// handling charge and tax percent take the showroom defaults.
type ManualLineRequest struct {
	Name string `json:"name" validate:"required,max=160"`
	PricingInputs
}

type AddLineItemRequest struct {
	RevisionRequest
	Source    string             `json:"source" validate:"required,oneof=product open_tag manual"`
	SourceRef string             `json:"source_ref" validate:"max=64"`
	Quantity  int                `json:"quantity" validate:"gte=0,lte=1000"`
	Manual    *ManualLineRequest `json:"manual,omitempty" validate:"required_if=Source manual"`
}

func (r AddLineItemRequest) ToCommand() usecase.AddLineItemCommand {
	cmd := usecase.AddLineItemCommand{
		Source:    entities.ItemSource(r.Source),
		SourceRef: r.SourceRef,
		Quantity:  r.Quantity,
	}
	if m := r.Manual; m != nil {
		cmd.Manual = usecase.LineInputs{
			Name:                m.Name,
			MetalType:           entities.MetalType(m.MetalType),
			Purity:              m.Purity,
			PricingMode:         entities.PricingMode(m.PricingMode),
			GrossWeight:         m.GrossWeight,
			StoneWeight:         m.StoneWeight,
			StonePrice:          m.StonePrice,
			WastageBasis:        m.wastageBasis(),
			WastagePercent:      m.WastagePercent,
			MakingChargeBasis:   m.makingChargeBasis(),
			MakingChargeInput:   m.MakingChargeInput,
			StoredMakingCharges: m.StoredMakingCharges,
			RateOverride:        m.Rate,
			FixedAmount:         m.FixedAmount,
			HandlingCharge:      m.HandlingCharge,
			TaxPercent:          m.TaxPercent,
		}
	}
	return cmd
}

// UpdateLineItemRequest edits a line. Omitted fields stay as they are.
type UpdateLineItemRequest struct {
	RevisionRequest
	Name                *string          `json:"name,omitempty" validate:"omitempty,max=160"`
	Quantity            *int             `json:"quantity,omitempty" validate:"omitempty,gte=1,lte=1000"`
	MetalType           *string          `json:"metal_type,omitempty" validate:"omitempty,oneof=gold silver other"`
	Purity              *string          `json:"purity,omitempty" validate:"omitempty,max=10"`
	PricingMode         *string          `json:"pricing_mode,omitempty" validate:"omitempty,oneof=by_weight fixed"`
	GrossWeight         *decimal.Decimal `json:"gross_weight,omitempty" validate:"omitempty,gte=0"`
	StoneWeight         *decimal.Decimal `json:"stone_weight,omitempty" validate:"omitempty,gte=0"`
	StonePrice          *decimal.Decimal `json:"stone_price,omitempty" validate:"omitempty,gte=0"`
	WastageBasis        *string          `json:"wastage_basis,omitempty" validate:"omitempty,oneof=gross_weight weight_before_wastage"`
	WastagePercent      *decimal.Decimal `json:"wastage_percent,omitempty" validate:"omitempty,gte=0"`
	MakingChargeBasis   *string          `json:"making_charge_basis,omitempty" validate:"omitempty,oneof=per_gram per_piece percent_of_rate"`
	MakingChargeInput   *decimal.Decimal `json:"making_charge_input,omitempty" validate:"omitempty,gte=0"`
	StoredMakingCharges *decimal.Decimal `json:"stored_making_charges,omitempty" validate:"omitempty,gte=0"`
	RateOverride        *decimal.Decimal `json:"rate_override,omitempty" validate:"omitempty,gte=0"`
	ClearRateOverride   bool             `json:"clear_rate_override"`
	FixedAmount         *decimal.Decimal `json:"fixed_amount,omitempty" validate:"omitempty,gte=0"`
	HandlingCharge      *decimal.Decimal `json:"handling_charge,omitempty" validate:"omitempty,gte=0"`
	TaxPercent          *decimal.Decimal `json:"tax_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (r UpdateLineItemRequest) ToPatch() usecase.LineItemPatch {
	p := usecase.LineItemPatch{
		Name:                r.Name,
		Quantity:            r.Quantity,
		Purity:              r.Purity,
		GrossWeight:         r.GrossWeight,
		StoneWeight:         r.StoneWeight,
		StonePrice:          r.StonePrice,
		WastagePercent:      r.WastagePercent,
		MakingChargeInput:   r.MakingChargeInput,
		StoredMakingCharges: r.StoredMakingCharges,
		RateOverride:        r.RateOverride,
		ClearRateOverride:   r.ClearRateOverride,
		FixedAmount:         r.FixedAmount,
		HandlingCharge:      r.HandlingCharge,
		TaxPercent:          r.TaxPercent,
	}
	if r.MetalType != nil {
		v := entities.MetalType(*r.MetalType)
		p.MetalType = &v
	}
	if r.PricingMode != nil {
		v := entities.PricingMode(*r.PricingMode)
		p.PricingMode = &v
	}
	if r.WastageBasis != nil {
		v := entities.WastageBasis(*r.WastageBasis)
		p.WastageBasis = &v
	}
	if r.MakingChargeBasis != nil {
		v := entities.MakingChargeBasis(*r.MakingChargeBasis)
		p.MakingChargeBasis = &v
	}
	return p
}

type SetDiscountRequest struct {
	RevisionRequest
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"gte=0,lte=100"`
}

type SetCustomerRequest struct {
	RevisionRequest
	CustomerID string `json:"customer_id" validate:"required,max=64"`
}
