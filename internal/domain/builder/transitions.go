package builder

import (
	"strconv"
	"strings"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/validation"
)

var itemFields = []string{validation.FieldItemType, validation.FieldItemSize, validation.FieldItemQuantity}

// SetItemField changes one field of the item form. Quantity bounds are checked here,
// before anything reaches pricing.
func (w Wizard) SetItemField(field, value string) (Wizard, error) {
	out := w.clone()
	value = strings.TrimSpace(value)
	switch field {
	case validation.FieldItemType:
		out.ItemForm.Type = value
	case validation.FieldItemSize:
		out.ItemForm.Size = value
	case validation.FieldItemQuantity:
		out.ItemForm.Quantity = value
		out.Touched[field] = true
	default:
		return w, ErrUnknownField
	}
	out.record(field, value)
	return out, nil
}

// SetItemForm replaces the whole item form.
func (w Wizard) SetItemForm(f ItemForm) Wizard {
	out := w.clone()
	out.ItemForm = ItemForm{
		Type:     strings.TrimSpace(f.Type),
		Size:     strings.TrimSpace(f.Size),
		Quantity: strings.TrimSpace(f.Quantity),
	}
	for _, field := range itemFields {
		value, _ := out.fieldValue(field)
		out.record(field, value)
	}
	return out
}

// SaveItem validates the item form and stores it: appended when adding,
// written over the remembered index when editing. The form and the edit index
// are cleared on success. ok is false when the form is invalid.
func (w Wizard) SaveItem() (Wizard, bool) {
	out := w.clone()

	failed := false
	for _, field := range itemFields {
		value, _ := out.fieldValue(field)
		msg := validation.Field(field, value)
		out.Touched[field] = true
		out.setError(field, msg)
		if msg != "" {
			failed = true
		}
	}
	if failed {
		return out, false
	}

	itemType, _ := entities.LookupItemType(out.ItemForm.Type)
	qty, _ := strconv.Atoi(out.ItemForm.Quantity)
	item := entities.QuoteItem{
		Type:      itemType.ID,
		Size:      out.ItemForm.Size,
		Quantity:  qty,
		BasePrice: itemType.BasePrice,
	}

	if out.EditingIndex != nil && *out.EditingIndex >= 0 && *out.EditingIndex < len(out.Draft.Items) {
		out.Draft.Items[*out.EditingIndex] = item
	} else {
		out.Draft.Items = append(out.Draft.Items, item)
	}

	out.ItemForm = ItemForm{}
	out.EditingIndex = nil
	for _, field := range itemFields {
		delete(out.Touched, field)
		delete(out.Errors, field)
	}
	delete(out.Errors, FieldItems)
	out.reprice()
	return out, true
}

// EditItem loads item i into the form, remembers i and returns to step 1.
func (w Wizard) EditItem(i int) (Wizard, error) {
	if i < 0 || i >= len(w.Draft.Items) {
		return w, ErrItemIndex
	}
	out := w.clone()
	it := out.Draft.Items[i]
	out.ItemForm = ItemForm{Type: it.Type, Size: it.Size, Quantity: quantityValue(it.Quantity)}
	out.EditingIndex = &i
	out.Step = StepItems
	for _, field := range itemFields {
		delete(out.Errors, field)
	}
	return out, nil
}

// CancelEdit drops the form contents and forgets the edit index.
func (w Wizard) CancelEdit() Wizard {
	out := w.clone()
	out.ItemForm = ItemForm{}
	out.EditingIndex = nil
	for _, field := range itemFields {
		delete(out.Errors, field)
		delete(out.Touched, field)
	}
	return out
}

// RemoveItem deletes item i. An edit in progress keeps pointing at the same item.
func (w Wizard) RemoveItem(i int) (Wizard, error) {
	if i < 0 || i >= len(w.Draft.Items) {
		return w, ErrItemIndex
	}
	out := w.clone()
	out.Draft.Items = append(out.Draft.Items[:i], out.Draft.Items[i+1:]...)

	if out.EditingIndex != nil {
		switch {
		case *out.EditingIndex == i:
			out.EditingIndex = nil
			out.ItemForm = ItemForm{}
		case *out.EditingIndex > i:
			*out.EditingIndex--
		}
	}
	if out.Touched[FieldItems] {
		out.setError(FieldItems, itemsError(out.Draft))
	}
	out.reprice()
	return out, nil
}

// SetCoatingField sets type, color or finish. Field names may be given with or
// without the "coating." prefix. Choosing a type also sets the price multiplier.
func (w Wizard) SetCoatingField(field, value string) (Wizard, error) {
	out := w.clone()
	value = strings.TrimSpace(value)
	field = "coating." + strings.TrimPrefix(field, "coating.")

	switch field {
	case validation.FieldCoatingType:
		out.Draft.Coating.Type = value
		out.Draft.Coating.PriceMultiplier = 0
		if ct, ok := entities.LookupCoatingType(value); ok {
			out.Draft.Coating.PriceMultiplier = ct.PriceMultiplier
		}
	case validation.FieldCoatingColor:
		out.Draft.Coating.Color = value
	case validation.FieldCoatingFinish:
		out.Draft.Coating.Finish = value
	default:
		return w, ErrUnknownField
	}
	out.record(field, value)
	out.reprice()
	return out, nil
}

// SetCoating replaces the whole coating selection.
func (w Wizard) SetCoating(c entities.Coating) Wizard {
	out := w
	for _, kv := range [][2]string{
		{validation.FieldCoatingType, c.Type},
		{validation.FieldCoatingColor, c.Color},
		{validation.FieldCoatingFinish, c.Finish},
	} {
		out, _ = out.SetCoatingField(kv[0], kv[1])
	}
	return out
}

const (
	ServiceSandblasting = "sandblasting"
	ServicePriming      = "priming"
	ServiceRushOrder    = "rushOrder"
)

// ToggleService flips one additional service.
func (w Wizard) ToggleService(name string) (Wizard, error) {
	out := w.clone()
	s := &out.Draft.AdditionalServices
	switch name {
	case ServiceSandblasting:
		s.Sandblasting = !s.Sandblasting
	case ServicePriming:
		s.Priming = !s.Priming
	case ServiceRushOrder, "rush_order":
		s.RushOrder = !s.RushOrder
	default:
		return w, ErrUnknownService
	}
	out.reprice()
	return out, nil
}

// SetServices replaces the additional service flags.
func (w Wizard) SetServices(s entities.AdditionalServices) Wizard {
	out := w.clone()
	out.Draft.AdditionalServices = s
	out.reprice()
	return out
}

// ApplyPromoCode stores a known code in upper case. An unknown code is
// reported under promoCode and contributes no discount; an empty code clears it.
func (w Wizard) ApplyPromoCode(code string) Wizard {
	out := w.clone()
	normalized := entities.NormalizePromoCode(code)
	out.Touched[validation.FieldPromoCode] = true

	msg := validation.Field(validation.FieldPromoCode, normalized)
	out.setError(validation.FieldPromoCode, msg)
	if msg != "" {
		out.Draft.PromoCode = ""
	} else {
		out.Draft.PromoCode = normalized
	}
	out.reprice()
	return out
}

// SetContactField sets name, email, phone or notes.
func (w Wizard) SetContactField(field, value string) (Wizard, error) {
	out := w.clone()
	c := &out.Draft.ContactInfo
	switch field {
	case validation.FieldName:
		c.Name = strings.TrimSpace(value)
	case validation.FieldEmail:
		c.Email = strings.TrimSpace(value)
	case validation.FieldPhone:
		c.Phone = strings.TrimSpace(value)
	case validation.FieldNotes:
		c.Notes = value
	default:
		return w, ErrUnknownField
	}
	v, _ := out.fieldValue(field)
	out.record(field, v)
	return out, nil
}

// SetContact replaces the contact block.
func (w Wizard) SetContact(c entities.ContactInfo) Wizard {
	out := w
	for _, kv := range [][2]string{
		{validation.FieldName, c.Name},
		{validation.FieldEmail, c.Email},
		{validation.FieldPhone, c.Phone},
		{validation.FieldNotes, c.Notes},
	} {
		out, _ = out.SetContactField(kv[0], kv[1])
	}
	return out
}
