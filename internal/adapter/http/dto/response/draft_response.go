package response

import (
	"coatingshop/internal/domain/builder"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
	"coatingshop/internal/usecase"
)

type PricingResponse struct {
	ItemsSubtotal        float64 `json:"items_subtotal"`
	CoatedSubtotal       float64 `json:"coated_subtotal"`
	ServicesSurcharge    float64 `json:"services_surcharge"`
	Subtotal             float64 `json:"subtotal"`
	BulkDiscountPercent  float64 `json:"bulk_discount_percent"`
	PromoDiscountPercent float64 `json:"promo_discount_percent"`
	DiscountPercent      float64 `json:"discount_percent"`
	Discount             float64 `json:"discount"`
	Total                float64 `json:"total"`
	SubtotalDisplay      string  `json:"subtotal_display"`
	DiscountDisplay      string  `json:"discount_display"`
	TotalDisplay         string  `json:"total_display"`
}

func FromBreakdown(b pricing.Breakdown) PricingResponse {
	return PricingResponse{
		ItemsSubtotal:        pricing.Round2(b.ItemsSubtotal),
		CoatedSubtotal:       pricing.Round2(b.CoatedSubtotal),
		ServicesSurcharge:    pricing.Round2(b.ServicesSurcharge),
		Subtotal:             pricing.Round2(b.Subtotal),
		BulkDiscountPercent:  b.BulkDiscountPercent,
		PromoDiscountPercent: b.PromoDiscountPercent,
		DiscountPercent:      b.DiscountPercent,
		Discount:             pricing.Round2(b.Discount),
		Total:                pricing.Round2(b.Total),
		SubtotalDisplay:      pricing.FormatCurrency(b.Subtotal),
		DiscountDisplay:      pricing.FormatCurrency(b.Discount),
		TotalDisplay:         pricing.FormatCurrency(b.Total),
	}
}

type DraftItemResponse struct {
	Index     int     `json:"index"`
	Type      string  `json:"type"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	BasePrice float64 `json:"base_price"`
}

type DraftResponse struct {
	ID                 string                      `json:"id"`
	Step               int                         `json:"step"`
	Items              []DraftItemResponse         `json:"items"`
	ItemForm           builder.ItemForm            `json:"item_form"`
	EditingIndex       *int                        `json:"editing_index"`
	Coating            entities.Coating            `json:"coating"`
	AdditionalServices entities.AdditionalServices `json:"additional_services"`
	PromoCode          string                      `json:"promo_code"`
	ContactInfo        entities.ContactInfo        `json:"contact_info"`
	Pricing            PricingResponse             `json:"pricing"`
	ServiceMode        string                      `json:"service_mode"`
	Errors             map[string]string           `json:"errors"`
	Touched            map[string]bool             `json:"touched"`
	Ready              bool                        `json:"ready"`

	// Set only by the transitions that report an outcome.
	Advanced *bool `json:"advanced,omitempty"`
	Saved    *bool `json:"saved,omitempty"`
}

func FromDraft(d usecase.Draft) DraftResponse {
	w := d.Wizard
	items := make([]DraftItemResponse, 0, len(w.Draft.Items))
	for i, it := range w.Draft.Items {
		items = append(items, DraftItemResponse{
			Index:     i,
			Type:      it.Type,
			Size:      it.Size,
			Quantity:  it.Quantity,
			BasePrice: it.BasePrice,
		})
	}

	errs := w.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	touched := w.Touched
	if touched == nil {
		touched = map[string]bool{}
	}
	ready, _ := w.Ready()

	return DraftResponse{
		ID:                 d.ID,
		Step:               int(w.Step),
		Items:              items,
		ItemForm:           w.ItemForm,
		EditingIndex:       w.EditingIndex,
		Coating:            w.Draft.Coating,
		AdditionalServices: w.Draft.AdditionalServices,
		PromoCode:          w.Draft.PromoCode,
		ContactInfo:        w.Draft.ContactInfo,
		Pricing:            FromBreakdown(w.Pricing()),
		ServiceMode:        w.ServiceMode,
		Errors:             errs,
		Touched:            touched,
		Ready:              ready,
	}
}

// WithAdvanced records whether Next moved to the following step.
func (r DraftResponse) WithAdvanced(advanced bool) DraftResponse {
	r.Advanced = &advanced
	return r
}

// WithSaved records whether SaveItem accepted the item form.
func (r DraftResponse) WithSaved(saved bool) DraftResponse {
	r.Saved = &saved
	return r
}
