package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/domain/pricing"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrDraftNotFound         = errors.New("draft not found")
	ErrInvalidDraftID        = errors.New("invalid draft id")
	ErrInvalidSalesperson    = errors.New("invalid salesperson")
	ErrDraftSubmitted        = errors.New("draft already submitted")
	ErrDraftRevisionConflict = errors.New("draft was modified by another request")
	ErrProductRequired       = errors.New("product selection required")
	ErrInvalidLineItem       = errors.New("invalid line item")
	ErrLineItemNotFound      = errors.New("line item not found")
	ErrQuantityNotEditable   = errors.New("quantity is only editable on catalog products")
	ErrInvalidDiscount       = errors.New("discount percent out of range")
	ErrCustomerRequired      = errors.New("customer selection required")
	ErrEmptyEstimate         = errors.New("estimate has no line items")
	ErrUnresolvedRate        = errors.New("line item has no resolvable rate")
	ErrNegativeTaxable       = errors.New("line item discount exceeds chargeable amount")
)

// EstimateNumberSequence is the counter estimate numbers are drawn from.
const EstimateNumberSequence = "estimate_number"

// DraftRef addresses a draft as seen by one salesperson at one revision.
// Every mutation must carry the revision it was based on.
type DraftRef struct {
	DraftID       string
	SalespersonID string
	Revision      int64
}

// LineInputs are the user-entered fields of a line item. Nil HandlingCharge
// or TaxPercent fall back to the showroom defaults.
type LineInputs struct {
	Name                string
	MetalType           entities.MetalType
	Purity              string
	PricingMode         entities.PricingMode
	GrossWeight         decimal.Decimal
	StoneWeight         decimal.Decimal
	StonePrice          decimal.Decimal
	WastageBasis        entities.WastageBasis
	WastagePercent      decimal.Decimal
	MakingChargeBasis   entities.MakingChargeBasis
	MakingChargeInput   decimal.Decimal
	StoredMakingCharges decimal.Decimal
	RateOverride        *decimal.Decimal
	FixedAmount         decimal.Decimal
	HandlingCharge      *decimal.Decimal
	TaxPercent          *decimal.Decimal
}

// AddLineItemCommand adds a line from a catalog product (SourceRef = product
// id), an open tag (SourceRef = tag number) or manual entry (Manual).
type AddLineItemCommand struct {
	Source    entities.ItemSource
	SourceRef string
	Quantity  int
	Manual    LineInputs
}

// LineItemPatch edits the inputs of an existing line. Nil fields are left
// unchanged. ClearRateOverride drops a previously entered override.
type LineItemPatch struct {
	Name                *string
	Quantity            *int
	MetalType           *entities.MetalType
	Purity              *string
	PricingMode         *entities.PricingMode
	GrossWeight         *decimal.Decimal
	StoneWeight         *decimal.Decimal
	StonePrice          *decimal.Decimal
	WastageBasis        *entities.WastageBasis
	WastagePercent      *decimal.Decimal
	MakingChargeBasis   *entities.MakingChargeBasis
	MakingChargeInput   *decimal.Decimal
	StoredMakingCharges *decimal.Decimal
	RateOverride        *decimal.Decimal
	ClearRateOverride   bool
	FixedAmount         *decimal.Decimal
	HandlingCharge      *decimal.Decimal
	TaxPercent          *decimal.Decimal
}

// PricingPolicy holds the showroom-wide pricing defaults.
type PricingPolicy struct {
	HandlingCharge     decimal.Decimal
	TaxPercent         decimal.Decimal
	MaxDiscountPercent decimal.Decimal
}

// DefaultPricingPolicy returns the stock showroom defaults.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		HandlingCharge:     pricing.DefaultHandlingCharge,
		TaxPercent:         pricing.DefaultTaxPercent,
		MaxDiscountPercent: pricing.DefaultMaxDiscountPercent,
	}
}

// IEstimateDraftUseCase owns the estimate editing session.
//
//	draft_empty <-> draft_with_items -> submitted
//
// Every mutation recomputes all derived line fields and totals before the
// draft is saved, so a stored draft never carries stale values.
type IEstimateDraftUseCase interface {
	CreateDraft(ctx context.Context, salespersonID, customerID string, date time.Time) (entities.EstimateDraft, error)
	GetDraft(ctx context.Context, draftID, salespersonID string) (entities.EstimateDraft, error)
	AddLineItem(ctx context.Context, ref DraftRef, cmd AddLineItemCommand) (entities.EstimateDraft, error)
	UpdateLineItem(ctx context.Context, ref DraftRef, lineID string, patch LineItemPatch) (entities.EstimateDraft, error)
	RemoveLineItem(ctx context.Context, ref DraftRef, lineID string) (entities.EstimateDraft, error)
	SetDiscount(ctx context.Context, ref DraftRef, discountPercent decimal.Decimal) (entities.EstimateDraft, error)
	SetCustomer(ctx context.Context, ref DraftRef, customerID string) (entities.EstimateDraft, error)
	Submit(ctx context.Context, ref DraftRef) (entities.Estimate, error)
}

// EstimateDraftDeps groups the collaborators of EstimateDraftUseCase.
type EstimateDraftDeps struct {
	Drafts    interfaces.IEstimateDraftRepository
	Estimates interfaces.IEstimateRepository
	Rates     interfaces.IRateSheetRepository
	Products  interfaces.IProductRepository
	OpenTags  interfaces.IOpenTagRepository
	Sequence  interfaces.ISequenceRepository
}

type EstimateDraftUseCase struct {
	deps     EstimateDraftDeps
	policy   PricingPolicy
	location *time.Location
	now      func() time.Time
}

var _ IEstimateDraftUseCase = (*EstimateDraftUseCase)(nil)

func NewEstimateDraftUseCase(deps EstimateDraftDeps, policy PricingPolicy, location *time.Location) *EstimateDraftUseCase {
	if location == nil {
		location = time.UTC
	}
	return &EstimateDraftUseCase{deps: deps, policy: policy, location: location, now: time.Now}
}

// pricingContext binds the policy defaults to sheet. Lines are built with an
// empty sheet; only the defaults matter there.
func (u *EstimateDraftUseCase) pricingContext(sheet entities.RateSheet) pricing.PricingContext {
	return pricing.PricingContext{
		RateSheet:             sheet,
		DefaultHandlingCharge: u.policy.HandlingCharge,
		DefaultTaxPercent:     u.policy.TaxPercent,
		MaxDiscountPercent:    u.policy.MaxDiscountPercent,
	}
}

func (u *EstimateDraftUseCase) CreateDraft(ctx context.Context, salespersonID, customerID string, date time.Time) (entities.EstimateDraft, error) {
	salespersonID = strings.TrimSpace(salespersonID)
	if salespersonID == "" {
		return entities.EstimateDraft{}, ErrInvalidSalesperson
	}
	now := u.now()
	if date.IsZero() {
		date = now
	}
	date = date.In(u.location)

	sheet, err := u.deps.Rates.GetEffective(ctx, date)
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	if sheet.ID == "" {
		return entities.EstimateDraft{}, ErrRateSheetNotFound
	}

	d := entities.EstimateDraft{
		ID:              uuid.NewString(),
		SalespersonID:   salespersonID,
		CustomerID:      strings.TrimSpace(customerID),
		Date:            date,
		RateSheet:       sheet,
		Items:           []entities.LineItem{},
		DiscountPercent: decimal.Zero,
		State:           entities.DraftStateEmpty,
		Revision:        1,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	if err := u.reprice(&d); err != nil {
		return entities.EstimateDraft{}, err
	}

	created, err := u.deps.Drafts.Create(ctx, d)
	if err != nil {
		log.Error().Err(err).Str("salesperson_id", salespersonID).Msg("[draft][usecase] create failed")
		return entities.EstimateDraft{}, err
	}
	log.Info().
		Str("draft_id", created.ID).
		Str("salesperson_id", salespersonID).
		Str("rate_sheet_id", sheet.ID).
		Msg("[draft][usecase] draft created")
	return created, nil
}

func (u *EstimateDraftUseCase) GetDraft(ctx context.Context, draftID, salespersonID string) (entities.EstimateDraft, error) {
	return u.load(ctx, draftID, salespersonID)
}

func (u *EstimateDraftUseCase) AddLineItem(ctx context.Context, ref DraftRef, cmd AddLineItemCommand) (entities.EstimateDraft, error) {
	item, err := u.buildLineItem(ctx, cmd)
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	return u.mutate(ctx, ref, "add-item", func(d *entities.EstimateDraft) error {
		d.Items = append(d.Items, item)
		return nil
	})
}

func (u *EstimateDraftUseCase) UpdateLineItem(ctx context.Context, ref DraftRef, lineID string, patch LineItemPatch) (entities.EstimateDraft, error) {
	lineID = strings.TrimSpace(lineID)
	return u.mutate(ctx, ref, "update-item", func(d *entities.EstimateDraft) error {
		idx := findLine(d.Items, lineID)
		if idx < 0 {
			return ErrLineItemNotFound
		}
		updated, err := applyPatch(d.Items[idx], patch)
		if err != nil {
			return err
		}
		d.Items[idx] = updated
		return nil
	})
}

func (u *EstimateDraftUseCase) RemoveLineItem(ctx context.Context, ref DraftRef, lineID string) (entities.EstimateDraft, error) {
	lineID = strings.TrimSpace(lineID)
	return u.mutate(ctx, ref, "remove-item", func(d *entities.EstimateDraft) error {
		idx := findLine(d.Items, lineID)
		if idx < 0 {
			return ErrLineItemNotFound
		}
		d.Items = append(d.Items[:idx:idx], d.Items[idx+1:]...)
		return nil
	})
}

// SetDiscount validates the percentage before touching the draft; a rejected
// value leaves every line as it was.
func (u *EstimateDraftUseCase) SetDiscount(ctx context.Context, ref DraftRef, discountPercent decimal.Decimal) (entities.EstimateDraft, error) {
	if err := pricing.ValidateDiscountPercent(discountPercent, u.policy.MaxDiscountPercent); err != nil {
		return entities.EstimateDraft{}, ErrInvalidDiscount
	}
	return u.mutate(ctx, ref, "set-discount", func(d *entities.EstimateDraft) error {
		d.DiscountPercent = discountPercent
		return nil
	})
}

func (u *EstimateDraftUseCase) SetCustomer(ctx context.Context, ref DraftRef, customerID string) (entities.EstimateDraft, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.EstimateDraft{}, ErrCustomerRequired
	}
	return u.mutate(ctx, ref, "set-customer", func(d *entities.EstimateDraft) error {
		d.CustomerID = customerID
		return nil
	})
}

// Submit finalizes the draft into a pending Estimate.
//
// The draft is claimed (marked submitted) with a compare-and-swap before the
// estimate is written, so two concurrent submits cannot both produce an
// estimate. If writing the estimate fails the claim is released.
func (u *EstimateDraftUseCase) Submit(ctx context.Context, ref DraftRef) (entities.Estimate, error) {
	d, err := u.loadForMutation(ctx, ref)
	if err != nil {
		return entities.Estimate{}, err
	}
	if d.CustomerID == "" {
		return entities.Estimate{}, ErrCustomerRequired
	}
	if len(d.Items) == 0 {
		return entities.Estimate{}, ErrEmptyEstimate
	}
	if err := u.reprice(&d); err != nil {
		return entities.Estimate{}, err
	}
	for _, it := range d.Items {
		if it.PricingMode != entities.PricingFixed && !it.Rate.IsPositive() {
			log.Warn().Str("draft_id", d.ID).Str("line_id", it.ID).Str("metal", string(it.MetalType)).
				Msg("[draft][usecase] submit blocked: unresolved rate")
			return entities.Estimate{}, ErrUnresolvedRate
		}
		if it.NegativeTaxable {
			log.Warn().Str("draft_id", d.ID).Str("line_id", it.ID).Str("taxable", it.TaxableAmount.String()).
				Msg("[draft][usecase] submit blocked: negative taxable amount")
			return entities.Estimate{}, ErrNegativeTaxable
		}
	}

	now := u.now().UTC()
	estimateID := uuid.NewString()

	claimed := d
	claimed.State = entities.DraftStateSubmitted
	claimed.EstimateID = estimateID
	claimed.Revision = ref.Revision + 1
	claimed.UpdatedAt = now
	saved, err := u.deps.Drafts.Save(ctx, claimed, ref.Revision)
	if err != nil {
		return entities.Estimate{}, err
	}
	if saved.ID == "" {
		return entities.Estimate{}, ErrDraftRevisionConflict
	}

	est, err := u.createEstimate(ctx, d, estimateID, now)
	if err != nil {
		u.releaseClaim(ctx, d, claimed.Revision)
		return entities.Estimate{}, err
	}
	log.Info().
		Str("draft_id", d.ID).
		Str("estimate_id", est.ID).
		Int64("number", est.Number).
		Str("net_payable", est.Totals.NetPayableAmount.String()).
		Msg("[draft][usecase] submit success")
	return est, nil
}

func (u *EstimateDraftUseCase) createEstimate(ctx context.Context, d entities.EstimateDraft, id string, now time.Time) (entities.Estimate, error) {
	number, err := u.deps.Sequence.Next(ctx, EstimateNumberSequence)
	if err != nil {
		log.Error().Err(err).Str("draft_id", d.ID).Msg("[draft][usecase] estimate number allocation failed")
		return entities.Estimate{}, err
	}
	est := entities.Estimate{
		ID:              id,
		Number:          number,
		DraftID:         d.ID,
		CustomerID:      d.CustomerID,
		SalespersonID:   d.SalespersonID,
		Date:            d.Date,
		RateSheetID:     d.RateSheet.ID,
		Items:           d.Items,
		DiscountPercent: d.DiscountPercent,
		Totals:          d.Totals,
		Status:          entities.EstimateStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.deps.Estimates.Create(ctx, est)
	if err != nil {
		log.Error().Err(err).Str("draft_id", d.ID).Msg("[draft][usecase] estimate create failed")
		return entities.Estimate{}, err
	}
	return created, nil
}

func (u *EstimateDraftUseCase) releaseClaim(ctx context.Context, d entities.EstimateDraft, claimedRevision int64) {
	d.Revision = claimedRevision + 1
	d.UpdatedAt = u.now().UTC()
	if _, err := u.deps.Drafts.Save(ctx, d, claimedRevision); err != nil {
		log.Error().Err(err).Str("draft_id", d.ID).Msg("[draft][usecase] failed to release submit claim")
	}
}

func (u *EstimateDraftUseCase) load(ctx context.Context, draftID, salespersonID string) (entities.EstimateDraft, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.EstimateDraft{}, ErrInvalidDraftID
	}
	d, err := u.deps.Drafts.GetByID(ctx, draftID)
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	// Other salespeople's drafts are reported as missing.
	if d.ID == "" || d.SalespersonID != strings.TrimSpace(salespersonID) {
		return entities.EstimateDraft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *EstimateDraftUseCase) loadForMutation(ctx context.Context, ref DraftRef) (entities.EstimateDraft, error) {
	d, err := u.load(ctx, ref.DraftID, ref.SalespersonID)
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	if d.State == entities.DraftStateSubmitted {
		return entities.EstimateDraft{}, ErrDraftSubmitted
	}
	if d.Revision != ref.Revision {
		return entities.EstimateDraft{}, ErrDraftRevisionConflict
	}
	return d, nil
}

// mutate runs fn on the current draft, reprices it and saves it at the next
// revision. Nothing is saved when fn or repricing fails.
func (u *EstimateDraftUseCase) mutate(ctx context.Context, ref DraftRef, op string, fn func(d *entities.EstimateDraft) error) (entities.EstimateDraft, error) {
	d, err := u.loadForMutation(ctx, ref)
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	if err := fn(&d); err != nil {
		return entities.EstimateDraft{}, err
	}
	if err := u.reprice(&d); err != nil {
		return entities.EstimateDraft{}, err
	}
	d.Revision = ref.Revision + 1
	d.UpdatedAt = u.now().UTC()

	saved, err := u.deps.Drafts.Save(ctx, d, ref.Revision)
	if err != nil {
		log.Error().Err(err).Str("draft_id", d.ID).Str("op", op).Msg("[draft][usecase] save failed")
		return entities.EstimateDraft{}, err
	}
	if saved.ID == "" {
		return entities.EstimateDraft{}, ErrDraftRevisionConflict
	}
	log.Debug().
		Str("draft_id", saved.ID).
		Str("op", op).
		Int64("revision", saved.Revision).
		Str("net_payable", saved.Totals.NetPayableAmount.String()).
		Msg("[draft][usecase] draft updated")
	return saved, nil
}

func (u *EstimateDraftUseCase) reprice(d *entities.EstimateDraft) error {
	totals, err := pricing.Aggregate(d.Items, d.DiscountPercent, u.pricingContext(d.RateSheet))
	if err != nil {
		return ErrInvalidDiscount
	}
	d.Totals = totals
	if len(d.Items) == 0 {
		d.State = entities.DraftStateEmpty
	} else {
		d.State = entities.DraftStateWithItems
	}
	return nil
}

func (u *EstimateDraftUseCase) buildLineItem(ctx context.Context, cmd AddLineItemCommand) (entities.LineItem, error) {
	ref := strings.TrimSpace(cmd.SourceRef)
	var item entities.LineItem
	pc := u.pricingContext(entities.RateSheet{})

	switch cmd.Source {
	case entities.ItemSourceProduct:
		if ref == "" {
			return entities.LineItem{}, ErrProductRequired
		}
		p, err := u.deps.Products.GetByID(ctx, ref)
		if err != nil {
			return entities.LineItem{}, err
		}
		if p.ID == "" || !p.Active {
			return entities.LineItem{}, ErrProductNotFound
		}
		item = lineFromProduct(p, pc)
		item.Quantity = cmd.Quantity
	case entities.ItemSourceOpenTag:
		if ref == "" {
			return entities.LineItem{}, ErrProductRequired
		}
		t, err := u.deps.OpenTags.GetByTagNumber(ctx, ref)
		if err != nil {
			return entities.LineItem{}, err
		}
		if t.ID == "" {
			return entities.LineItem{}, ErrOpenTagNotFound
		}
		item = lineFromOpenTag(t, pc)
		item.Quantity = 1
	case entities.ItemSourceManual:
		item = lineFromInputs(cmd.Manual, pc)
		item.Quantity = 1
		if item.Name == "" {
			return entities.LineItem{}, ErrInvalidLineItem
		}
	default:
		return entities.LineItem{}, ErrProductRequired
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if err := validateLineInputs(item); err != nil {
		return entities.LineItem{}, err
	}
	item.ID = uuid.NewString()
	return item, nil
}

// lineFromProduct copies the catalog values as-is; they are authoritative.
// Handling charge and tax percent the catalog leaves unset come from pc.
func lineFromProduct(p entities.Product, pc pricing.PricingContext) entities.LineItem {
	return entities.LineItem{
		Source:              entities.ItemSourceProduct,
		SourceRef:           p.ID,
		Name:                p.Name,
		Images:              append([]string(nil), p.Images...),
		MetalType:           p.MetalType,
		Purity:              p.Purity,
		PricingMode:         p.PricingMode,
		GrossWeight:         p.GrossWeight,
		StoneWeight:         p.StoneWeight,
		StonePrice:          p.StonePrice,
		WastageBasis:        p.WastageBasis,
		WastagePercent:      p.WastagePercent,
		MakingChargeBasis:   p.MakingChargeBasis,
		MakingChargeInput:   p.MakingChargeInput,
		StoredMakingCharges: p.StoredMakingCharges,
		RateOverride:        p.Rate,
		FixedAmount:         p.FixedAmount,
		HandlingCharge:      pc.HandlingChargeOr(p.HandlingCharge),
		TaxPercent:          pc.TaxPercentOr(p.TaxPercent),
	}
}

func lineFromOpenTag(t entities.OpenTag, pc pricing.PricingContext) entities.LineItem {
	name := t.Description
	if strings.TrimSpace(name) == "" {
		name = "Tag " + t.TagNumber
	}
	return entities.LineItem{
		Source:              entities.ItemSourceOpenTag,
		SourceRef:           t.TagNumber,
		Name:                name,
		MetalType:           t.MetalType,
		Purity:              t.Purity,
		PricingMode:         t.PricingMode,
		GrossWeight:         t.GrossWeight,
		StoneWeight:         t.StoneWeight,
		StonePrice:          t.StonePrice,
		WastageBasis:        t.WastageBasis,
		WastagePercent:      t.WastagePercent,
		MakingChargeBasis:   t.MakingChargeBasis,
		MakingChargeInput:   t.MakingChargeInput,
		StoredMakingCharges: t.StoredMakingCharges,
		RateOverride:        t.Rate,
		FixedAmount:         t.FixedAmount,
		HandlingCharge:      pc.HandlingChargeOr(t.HandlingCharge),
		TaxPercent:          pc.TaxPercentOr(t.TaxPercent),
	}
}

func lineFromInputs(in LineInputs, pc pricing.PricingContext) entities.LineItem {
	stored := in.StoredMakingCharges
	if in.MakingChargeBasis == entities.MakingChargePerPiece && stored.IsZero() {
		stored = in.MakingChargeInput
	}
	return entities.LineItem{
		Source:              entities.ItemSourceManual,
		Name:                strings.TrimSpace(in.Name),
		MetalType:           in.MetalType,
		Purity:              strings.TrimSpace(in.Purity),
		PricingMode:         in.PricingMode,
		GrossWeight:         in.GrossWeight,
		StoneWeight:         in.StoneWeight,
		StonePrice:          in.StonePrice,
		WastageBasis:        in.WastageBasis,
		WastagePercent:      in.WastagePercent,
		MakingChargeBasis:   in.MakingChargeBasis,
		MakingChargeInput:   in.MakingChargeInput,
		StoredMakingCharges: stored,
		RateOverride:        in.RateOverride,
		FixedAmount:         in.FixedAmount,
		HandlingCharge:      pc.HandlingChargeOr(in.HandlingCharge),
		TaxPercent:          pc.TaxPercentOr(in.TaxPercent),
	}
}

func applyPatch(item entities.LineItem, p LineItemPatch) (entities.LineItem, error) {
	if p.Quantity != nil {
		if !item.QuantityEditable() {
			return entities.LineItem{}, ErrQuantityNotEditable
		}
		if *p.Quantity < 1 {
			return entities.LineItem{}, ErrInvalidLineItem
		}
		item.Quantity = *p.Quantity
	}
	if p.Name != nil {
		item.Name = strings.TrimSpace(*p.Name)
	}
	if p.MetalType != nil {
		item.MetalType = *p.MetalType
	}
	if p.Purity != nil {
		item.Purity = strings.TrimSpace(*p.Purity)
	}
	if p.PricingMode != nil {
		item.PricingMode = *p.PricingMode
	}
	if p.GrossWeight != nil {
		item.GrossWeight = *p.GrossWeight
	}
	if p.StoneWeight != nil {
		item.StoneWeight = *p.StoneWeight
	}
	if p.StonePrice != nil {
		item.StonePrice = *p.StonePrice
	}
	if p.WastageBasis != nil {
		item.WastageBasis = *p.WastageBasis
	}
	if p.WastagePercent != nil {
		item.WastagePercent = *p.WastagePercent
	}
	if p.MakingChargeBasis != nil {
		item.MakingChargeBasis = *p.MakingChargeBasis
	}
	if p.MakingChargeInput != nil {
		item.MakingChargeInput = *p.MakingChargeInput
		if item.MakingChargeBasis == entities.MakingChargePerPiece && p.StoredMakingCharges == nil {
			item.StoredMakingCharges = *p.MakingChargeInput
		}
	}
	if p.StoredMakingCharges != nil {
		item.StoredMakingCharges = *p.StoredMakingCharges
	}
	if p.ClearRateOverride {
		item.RateOverride = nil
	} else if p.RateOverride != nil {
		v := *p.RateOverride
		item.RateOverride = &v
	}
	if p.FixedAmount != nil {
		item.FixedAmount = *p.FixedAmount
	}
	if p.HandlingCharge != nil {
		item.HandlingCharge = *p.HandlingCharge
	}
	if p.TaxPercent != nil {
		item.TaxPercent = *p.TaxPercent
	}
	if item.Name == "" {
		return entities.LineItem{}, ErrInvalidLineItem
	}
	if err := validateLineInputs(item); err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func validateLineInputs(item entities.LineItem) error {
	if !validPricingShape(item.MetalType, item.PricingMode, item.WastageBasis, item.MakingChargeBasis) {
		return ErrInvalidLineItem
	}
	for _, v := range []decimal.Decimal{
		item.GrossWeight, item.StoneWeight, item.StonePrice, item.WastagePercent,
		item.MakingChargeInput, item.StoredMakingCharges, item.FixedAmount,
		item.HandlingCharge, item.TaxPercent,
	} {
		if v.IsNegative() {
			return ErrInvalidLineItem
		}
	}
	if item.RateOverride != nil && item.RateOverride.IsNegative() {
		return ErrInvalidLineItem
	}
	return nil
}

func findLine(items []entities.LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
