package request

import (
	"strings"

	"coatingshop/internal/domain/entities"
)

type QuoteItemRequest struct {
	Type     string `json:"type"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type CoatingRequest struct {
	Type   string `json:"type"`
	Color  string `json:"color"`
	Finish string `json:"finish"`
}

type AdditionalServicesRequest struct {
	Sandblasting bool `json:"sandblasting"`
	Priming      bool `json:"priming"`
	RushOrder    bool `json:"rush_order"`
}

type ContactInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// QuoteContentRequest replaces the whole content of a submitted quote. Prices
// sent by the client are ignored; the server reprices from the catalog.
type QuoteContentRequest struct {
	Items              []QuoteItemRequest        `json:"items"`
	Coating            CoatingRequest            `json:"coating"`
	AdditionalServices AdditionalServicesRequest `json:"additional_services"`
	PromoCode          string                    `json:"promo_code"`
	ContactInfo        ContactInfoRequest        `json:"contact_info"`
}

func (r QuoteContentRequest) ToDraft() entities.QuoteDraft {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			Type:     strings.TrimSpace(it.Type),
			Size:     strings.TrimSpace(it.Size),
			Quantity: it.Quantity,
		})
	}
	return entities.QuoteDraft{
		Items:              items,
		Coating:            r.Coating.ToEntity(),
		AdditionalServices: r.AdditionalServices.ToEntity(),
		PromoCode:          r.PromoCode,
		ContactInfo:        r.ContactInfo.ToEntity(),
	}
}

func (r CoatingRequest) ToEntity() entities.Coating {
	return entities.Coating{
		Type:   strings.TrimSpace(r.Type),
		Color:  strings.TrimSpace(r.Color),
		Finish: strings.TrimSpace(r.Finish),
	}
}

func (r AdditionalServicesRequest) ToEntity() entities.AdditionalServices {
	return entities.AdditionalServices{
		Sandblasting: r.Sandblasting,
		Priming:      r.Priming,
		RushOrder:    r.RushOrder,
	}
}

func (r ContactInfoRequest) ToEntity() entities.ContactInfo {
	return entities.ContactInfo{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTrackingRequest sets the carrier tracking number. An empty value clears it.
type UpdateTrackingRequest struct {
	TrackingNumber string `json:"tracking_number"`
}
