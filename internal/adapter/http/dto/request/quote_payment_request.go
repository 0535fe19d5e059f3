package request

import "encoding/json"

// QuotePaymentRequest is the payload for paying an approved quote.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas. A bare provider payload without the envelope is accepted too.
type QuotePaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
