package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the "take payment for an
// accepted estimate" route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. The amount is always taken from the stored estimate.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
