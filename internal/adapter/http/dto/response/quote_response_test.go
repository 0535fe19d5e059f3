package response

import (
	"encoding/json"
	"testing"
	"time"

	"coatingshop/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	q := entities.Quote{
		QuoteDraft: entities.QuoteDraft{
			Items:    []entities.QuoteItem{{Type: "wheels", Size: "medium", Quantity: 3, BasePrice: 25}},
			Coating:  entities.Coating{Type: "metallic", Color: "black", Finish: "gloss", PriceMultiplier: 1.2},
			Subtotal: 1234.5678,
			Discount: 0.004,
			Total:    1234.5638,
		},
		ID:          "q-1",
		UserID:      "user-1",
		Status:      entities.QuoteStatusApproved,
		OrderNumber: "PC-261016-ABCDEF",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.Status != "approved" || !res.Cancellable {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Subtotal != 1234.57 || res.Total != 1234.56 || res.Discount != 0 {
		t.Fatalf("unexpected rounding: %+v", res)
	}
	if res.TotalDisplay != "$1,234.56" {
		t.Fatalf("unexpected display: %s", res.TotalDisplay)
	}
	if len(res.Items) != 1 || res.Items[0].LineTotal != 75 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["tracking_number"]; ok {
		t.Fatalf("tracking_number should be omitted when empty: %s", b)
	}
}

func TestFromQuotes_Empty(t *testing.T) {
	res := FromQuotes(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}

func TestFromQuotePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.QuotePayment{
		ID:                 "pay-1",
		QuoteID:            "q-1",
		Amount:             112.5,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":123}`),
		ProviderPayload:    map[string]any{"id": float64(123)},
	}

	res := FromQuotePayment(p)
	if res.PaymentID != "pay-1" || res.QuoteID != "q-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.AmountDisplay != "$112.50" || !res.Date.Equal(now) {
		t.Fatalf("unexpected amount/date: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"id":123}` {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
}

func TestFromCatalog(t *testing.T) {
	res := FromCatalog(entities.DefaultCatalog())
	if len(res.ItemTypes) == 0 || len(res.CoatingTypes) == 0 {
		t.Fatalf("catalog not copied: %+v", res)
	}
	if len(res.Statuses) != 9 || res.Statuses[0] != "pending" || res.Statuses[8] != "cancelled" {
		t.Fatalf("unexpected statuses: %v", res.Statuses)
	}
	if res.MaxQuantity != 1000 {
		t.Fatalf("unexpected max quantity: %d", res.MaxQuantity)
	}
}
