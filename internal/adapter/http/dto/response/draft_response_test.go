package response

import (
	"testing"

	"coatingshop/internal/domain/builder"
	"coatingshop/internal/usecase"
)

func TestFromDraft(t *testing.T) {
	w := builder.New("percentage")
	w = w.SetItemForm(builder.ItemForm{Type: "wheels", Size: "medium", Quantity: "5"})
	w, saved := w.SaveItem()
	if !saved {
		t.Fatalf("expected item to be saved")
	}

	res := FromDraft(usecase.Draft{ID: "d-1", Wizard: w})
	if res.ID != "d-1" || res.Step != 1 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Index != 0 || res.Items[0].BasePrice != 25 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Pricing.Subtotal != 125 || res.Pricing.TotalDisplay != "$125.00" {
		t.Fatalf("unexpected pricing: %+v", res.Pricing)
	}
	if res.Ready {
		t.Fatalf("draft without coating or contact must not be ready")
	}
	if res.Advanced != nil || res.Saved != nil {
		t.Fatalf("outcome flags should be unset")
	}

	res = res.WithAdvanced(false).WithSaved(true)
	if res.Advanced == nil || *res.Advanced || res.Saved == nil || !*res.Saved {
		t.Fatalf("unexpected outcome flags: %+v", res)
	}
}

func TestFromDraft_NilMaps(t *testing.T) {
	res := FromDraft(usecase.Draft{ID: "d-1"})
	if res.Errors == nil || res.Touched == nil {
		t.Fatalf("maps should never be nil")
	}
	if len(res.Items) != 0 {
		t.Fatalf("expected no items")
	}
}
