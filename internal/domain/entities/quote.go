package entities

import "time"

// QuoteItem is one line of a quote. Identity is its position in QuoteDraft.Items.
type QuoteItem struct {
	Type      string  `json:"type"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	BasePrice float64 `json:"base_price"`
}

type Coating struct {
	Type            string  `json:"type"`
	Color           string  `json:"color"`
	Finish          string  `json:"finish"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// Complete reports whether type, color and finish are all chosen.
func (c Coating) Complete() bool {
	return c.Type != "" && c.Color != "" && c.Finish != ""
}

type AdditionalServices struct {
	Sandblasting bool `json:"sandblasting"`
	Priming      bool `json:"priming"`
	RushOrder    bool `json:"rush_order"`
}

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// QuoteDraft is the quote content. Subtotal, DiscountPercent, Discount and
// Total are derived and recomputed in full after every change.
//
// Monetary values are float64 currency units and are only rounded for display.
type QuoteDraft struct {
	Items              []QuoteItem        `json:"items"`
	Coating            Coating            `json:"coating"`
	AdditionalServices AdditionalServices `json:"additional_services"`
	PromoCode          string             `json:"promo_code,omitempty"`
	Subtotal           float64            `json:"subtotal"`
	DiscountPercent    float64            `json:"discount_percent"`
	Discount           float64            `json:"discount"`
	Total              float64            `json:"total"`
	ContactInfo        ContactInfo        `json:"contact_info"`
}

// TotalQuantity sums item quantities; bulk discount tiers key off it.
func (d QuoteDraft) TotalQuantity() int {
	q := 0
	for _, it := range d.Items {
		q += it.Quantity
	}
	return q
}

// Clone returns a copy that shares no slice storage with d.
func (d QuoteDraft) Clone() QuoteDraft {
	out := d
	if d.Items != nil {
		out.Items = make([]QuoteItem, len(d.Items))
		copy(out.Items, d.Items)
	}
	return out
}

// Quote is a submitted draft as persisted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Quote struct {
	QuoteDraft

	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Status         QuoteStatus `json:"status"`
	OrderNumber    string      `json:"order_number"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	UpdatedBy      string      `json:"updated_by"`
}
