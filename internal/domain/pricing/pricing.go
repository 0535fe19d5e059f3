package pricing

import "coatingshop/internal/domain/entities"

// Breakdown is the full result of pricing a draft. Nothing is rounded.
type Breakdown struct {
	ItemsSubtotal        float64 `json:"items_subtotal"`
	CoatedSubtotal       float64 `json:"coated_subtotal"`
	ServicesSurcharge    float64 `json:"services_surcharge"`
	Subtotal             float64 `json:"subtotal"`
	BulkDiscountPercent  float64 `json:"bulk_discount_percent"`
	PromoDiscountPercent float64 `json:"promo_discount_percent"`
	DiscountPercent      float64 `json:"discount_percent"`
	Discount             float64 `json:"discount"`
	Total                float64 `json:"total"`
}

// BulkDiscountPercent maps the total item quantity to its discount tier.
func BulkDiscountPercent(totalQuantity int) float64 {
	switch {
	case totalQuantity >= 50:
		return 15
	case totalQuantity >= 25:
		return 10
	case totalQuantity >= 10:
		return 5
	default:
		return 0
	}
}

// Compute prices a draft. The order of the steps matters: the coating
// multiplier applies before the service surcharge, and the discount applies
// last as a single factor. Bulk and promo discounts add up in percentage points.
func Compute(d entities.QuoteDraft, strategy ServiceStrategy) Breakdown {
	if len(d.Items) == 0 {
		return Breakdown{}
	}
	if strategy == nil {
		strategy = PercentageServices{}
	}

	var b Breakdown
	for _, it := range d.Items {
		b.ItemsSubtotal += it.BasePrice * float64(it.Quantity)
	}

	multiplier := d.Coating.PriceMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	b.CoatedSubtotal = b.ItemsSubtotal * multiplier
	b.ServicesSurcharge = strategy.Surcharge(b.CoatedSubtotal, d.AdditionalServices)
	b.Subtotal = b.CoatedSubtotal + b.ServicesSurcharge

	b.BulkDiscountPercent = BulkDiscountPercent(d.TotalQuantity())
	if pct, ok := entities.PromoDiscountPercent(d.PromoCode); ok {
		b.PromoDiscountPercent = pct
	}
	b.DiscountPercent = b.BulkDiscountPercent + b.PromoDiscountPercent

	b.Total = b.Subtotal * (1 - b.DiscountPercent/100)
	b.Discount = b.Subtotal - b.Total
	return b
}

// ComputePricing prices a draft with the canonical service rule.
func ComputePricing(d entities.QuoteDraft) Breakdown {
	return Compute(d, PercentageServices{})
}

// Apply returns a copy of d with its derived money fields recomputed.
func Apply(d entities.QuoteDraft, strategy ServiceStrategy) entities.QuoteDraft {
	out := d.Clone()
	b := Compute(out, strategy)
	out.Subtotal = b.Subtotal
	out.DiscountPercent = b.DiscountPercent
	out.Discount = b.Discount
	out.Total = b.Total
	return out
}
