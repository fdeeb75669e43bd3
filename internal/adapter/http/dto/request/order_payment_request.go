package request

import "encoding/json"

// OrderPaymentCreateRequest is the optional envelope of the charge route.
//
// `mp_payload` is passed as-is (raw JSON) to support varying Mercado Pago schemas.
type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
