package response

import (
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
)

type QuotePaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	QuoteID       string    `json:"quote_id"`
	Amount        float64   `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:          p.ID,
		QuoteID:            p.QuoteID,
		Amount:             pricing.Round2(p.Amount),
		AmountDisplay:      pricing.FormatCurrency(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
