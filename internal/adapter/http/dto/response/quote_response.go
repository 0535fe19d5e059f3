package response

import (
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
)

type QuoteItemResponse struct {
	Type      string  `json:"type"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	BasePrice float64 `json:"base_price"`
	LineTotal float64 `json:"line_total"`
}

// QuoteResponse rounds money to cents and adds formatted display strings.
type QuoteResponse struct {
	ID                 string                      `json:"id"`
	UserID             string                      `json:"user_id"`
	OrderNumber        string                      `json:"order_number"`
	Status             string                      `json:"status"`
	Cancellable        bool                        `json:"cancellable"`
	TrackingNumber     string                      `json:"tracking_number,omitempty"`
	Items              []QuoteItemResponse         `json:"items"`
	Coating            entities.Coating            `json:"coating"`
	AdditionalServices entities.AdditionalServices `json:"additional_services"`
	PromoCode          string                      `json:"promo_code,omitempty"`
	ContactInfo        entities.ContactInfo        `json:"contact_info"`
	Subtotal           float64                     `json:"subtotal"`
	DiscountPercent    float64                     `json:"discount_percent"`
	Discount           float64                     `json:"discount"`
	Total              float64                     `json:"total"`
	SubtotalDisplay    string                      `json:"subtotal_display"`
	DiscountDisplay    string                      `json:"discount_display"`
	TotalDisplay       string                      `json:"total_display"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
	UpdatedBy          string                      `json:"updated_by,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Type:      it.Type,
			Size:      it.Size,
			Quantity:  it.Quantity,
			BasePrice: it.BasePrice,
			LineTotal: pricing.Round2(it.BasePrice * float64(it.Quantity)),
		})
	}
	return QuoteResponse{
		ID:                 q.ID,
		UserID:             q.UserID,
		OrderNumber:        q.OrderNumber,
		Status:             string(q.Status),
		Cancellable:        q.Status.IsCancellable(),
		TrackingNumber:     q.TrackingNumber,
		Items:              items,
		Coating:            q.Coating,
		AdditionalServices: q.AdditionalServices,
		PromoCode:          q.PromoCode,
		ContactInfo:        q.ContactInfo,
		Subtotal:           pricing.Round2(q.Subtotal),
		DiscountPercent:    q.DiscountPercent,
		Discount:           pricing.Round2(q.Discount),
		Total:              pricing.Round2(q.Total),
		SubtotalDisplay:    pricing.FormatCurrency(q.Subtotal),
		DiscountDisplay:    pricing.FormatCurrency(q.Discount),
		TotalDisplay:       pricing.FormatCurrency(q.Total),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
		UpdatedBy:          q.UpdatedBy,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}
