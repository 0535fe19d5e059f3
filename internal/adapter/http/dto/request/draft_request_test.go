package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestItemFormRequest_Quantity(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"type":"wheels","size":"medium","quantity":5}`, "5"},
		{"string", `{"type":"wheels","size":"medium","quantity":"12"}`, "12"},
		{"partial text", `{"quantity":"1x"}`, "1x"},
		{"null", `{"quantity":null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r ItemFormRequest
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.ToForm().Quantity; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("object is rejected", func(t *testing.T) {
		var r ItemFormRequest
		err := json.Unmarshal([]byte(`{"quantity":{"n":1}}`), &r)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestQuoteContentRequest_ToDraft(t *testing.T) {
	r := QuoteContentRequest{
		Items:              []QuoteItemRequest{{Type: " wheels ", Size: "medium", Quantity: 4}},
		Coating:            CoatingRequest{Type: "metallic", Color: " black", Finish: "gloss"},
		AdditionalServices: AdditionalServicesRequest{Priming: true},
		PromoCode:          "welcome10",
		ContactInfo:        ContactInfoRequest{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"},
	}

	d := r.ToDraft()
	if len(d.Items) != 1 || d.Items[0].Type != "wheels" || d.Items[0].Quantity != 4 {
		t.Fatalf("unexpected items: %+v", d.Items)
	}
	if d.Items[0].BasePrice != 0 {
		t.Fatalf("base price must come from the catalog, got %v", d.Items[0].BasePrice)
	}
	if d.Coating.Color != "black" || !d.AdditionalServices.Priming || d.PromoCode != "welcome10" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.ContactInfo.Email != "jane@example.com" {
		t.Fatalf("unexpected contact: %+v", d.ContactInfo)
	}
}
