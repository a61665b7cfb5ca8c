package response

import (
	"encoding/json"
	"testing"
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromEstimate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	e := entities.Estimate{
		ID:              "est-1",
		Number:          42,
		CustomerID:      "cust-1",
		SalespersonID:   "sp-1",
		Date:            now,
		RateSheetID:     "2026-03-14",
		DiscountPercent: decimal.NewFromInt(5),
		Items: []entities.LineItem{
			{ID: "li-1", Source: entities.ItemSourceProduct, Name: "Ring", Quantity: 2, TotalPrice: decimal.RequireFromString("100744.00")},
			{ID: "li-2", Source: entities.ItemSourceOpenTag, Name: "Chain", Quantity: 1},
		},
		Totals:    entities.EstimateTotals{NetPayableAmount: decimal.RequireFromString("100744.00")},
		Status:    entities.EstimateStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.Number != 42 || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Date != "2026-03-14" {
		t.Fatalf("unexpected date: %s", res.Date)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if !res.Items[0].QuantityEditable || res.Items[1].QuantityEditable {
		t.Fatalf("quantity editability not mapped: %+v", res.Items)
	}
	if !res.Totals.NetPayableAmount.Equal(decimal.RequireFromString("100744")) {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestFromDraft_CarriesRevision(t *testing.T) {
	d := entities.EstimateDraft{
		ID:        "draft-1",
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		RateSheet: entities.RateSheet{ID: "2026-03-14", EffectiveDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Gold22K: decimal.NewFromInt(6200)},
		State:     entities.DraftStateEmpty,
		Revision:  3,
	}

	res := FromDraft(d)
	if res.Revision != 3 || res.State != "draft_empty" {
		t.Fatalf("unexpected draft: %+v", res)
	}
	if res.Items == nil {
		t.Fatalf("items must serialize as an empty list")
	}
	if res.RateSheet.EffectiveDate != "2026-03-14" || !res.RateSheet.Gold22K.Equal(decimal.NewFromInt(6200)) {
		t.Fatalf("unexpected rate sheet: %+v", res.RateSheet)
	}
}

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:                 "pay-1",
		EstimateID:         "est-1",
		Amount:             decimal.RequireFromString("100744.00"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]any{"a": "b"},
	}

	res := FromBillingPayment(p)
	if res.ID != "pay-1" || res.EstimateID != "est-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) || res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromProductPage(t *testing.T) {
	list := []entities.Product{{ID: "p-1", SKU: "RG-001", Name: "Ring"}}

	res := FromProductPage(list, 7, 2, 1)
	if res.Total != 7 || res.Page != 2 || res.Limit != 1 || len(res.Items) != 1 {
		t.Fatalf("unexpected page: %+v", res)
	}
	if res.Items[0].Images == nil {
		t.Fatalf("images must serialize as an empty list")
	}
}

func TestFromAttendance_DefaultsState(t *testing.T) {
	res := FromAttendance(entities.Attendance{})
	if res.State != "not_checked_in" {
		t.Fatalf("expected not_checked_in, got %s", res.State)
	}
}

func TestFromVisit_OmitsCode(t *testing.T) {
	v := entities.VisitLog{ID: "v-1", CustomerPhone: "+919876543210", Status: entities.VisitPendingVerification}

	body, err := json.Marshal(FromVisit(v))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"code", "otp", "code_hash"} {
		if _, ok := m[k]; ok {
			t.Fatalf("response leaks %s", k)
		}
	}
	if m["status"] != "pending_verification" {
		t.Fatalf("unexpected status: %v", m["status"])
	}
}
