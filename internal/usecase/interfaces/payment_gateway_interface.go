package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges a quote through an external provider such as Mercado
// Pago. The raw provider response is stored with the payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, payload json.RawMessage) (providerID string, providerStatus string, providerResponse json.RawMessage, err error)
}
