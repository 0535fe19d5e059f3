package builder

import (
	"testing"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
	"coatingshop/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItem(t *testing.T, w Wizard, itemType, size, qty string) Wizard {
	t.Helper()
	w = w.SetItemForm(ItemForm{Type: itemType, Size: size, Quantity: qty})
	w, ok := w.SaveItem()
	require.True(t, ok, "save item failed: %v", w.Errors)
	return w
}

func completeCoating(w Wizard) Wizard {
	return w.SetCoating(entities.Coating{Type: "standard", Color: "black", Finish: "gloss"})
}

func TestWizard_StepGating(t *testing.T) {
	w := New(pricing.ModePercentage)
	require.Equal(t, StepItems, w.Step)

	w, errs := w.Next()
	assert.Equal(t, StepItems, w.Step)
	assert.Contains(t, errs, FieldItems)
	assert.Contains(t, w.Errors, FieldItems)

	w = addItem(t, w, "wheels", "medium", "4")
	assert.NotContains(t, w.Errors, FieldItems)
	w, errs = w.Next()
	require.Empty(t, errs)
	assert.Equal(t, StepCoating, w.Step)

	w, _ = w.SetCoatingField("type", "metallic")
	w, errs = w.Next()
	assert.Equal(t, StepCoating, w.Step)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, validation.FieldCoatingColor)
	assert.Contains(t, errs, validation.FieldCoatingFinish)

	w = completeCoating(w)
	w, errs = w.Next()
	require.Empty(t, errs)
	assert.Equal(t, StepServices, w.Step)

	w, errs = w.Next()
	require.Empty(t, errs)
	assert.Equal(t, StepContact, w.Step)

	w = w.SetContact(entities.ContactInfo{Name: "Dana Ruiz", Email: "not-an-email", Phone: "555-123-4567"})
	w, errs = w.Next()
	assert.Equal(t, StepContact, w.Step)
	assert.NotEmpty(t, errs[validation.FieldEmail])
	assert.NotEmpty(t, w.Errors[validation.FieldEmail])

	w, _ = w.SetContactField(validation.FieldEmail, "dana@example.com")
	assert.Empty(t, w.Errors[validation.FieldEmail])
	w, errs = w.Next()
	assert.Empty(t, errs)
	assert.Equal(t, StepContact, w.Step, "step never passes the last step")

	ready, missing := w.Ready()
	assert.True(t, ready)
	assert.Empty(t, missing)
}

func TestWizard_Previous(t *testing.T) {
	w := New("")
	w = w.Previous()
	assert.Equal(t, StepItems, w.Step)

	w.Step = StepServices
	w = w.Previous()
	assert.Equal(t, StepCoating, w.Step)
	w = w.Previous().Previous().Previous()
	assert.Equal(t, StepItems, w.Step)
}

func TestWizard_EditReplacesItemInPlace(t *testing.T) {
	w := New("")
	w = addItem(t, w, "wheels", "medium", "4")
	w = addItem(t, w, "brackets", "small", "20")
	w = addItem(t, w, "frames", "large", "1")
	w.Step = StepServices

	w, err := w.EditItem(1)
	require.NoError(t, err)
	require.NotNil(t, w.EditingIndex)
	assert.Equal(t, 1, *w.EditingIndex)
	assert.Equal(t, StepItems, w.Step)
	assert.Equal(t, ItemForm{Type: "brackets", Size: "small", Quantity: "20"}, w.ItemForm)

	w, err = w.SetItemField(validation.FieldItemQuantity, "30")
	require.NoError(t, err)
	w, ok := w.SaveItem()
	require.True(t, ok)

	require.Len(t, w.Draft.Items, 3)
	assert.Nil(t, w.EditingIndex)
	assert.Equal(t, 30, w.Draft.Items[1].Quantity)
	assert.Equal(t, "wheels", w.Draft.Items[0].Type)
	assert.Equal(t, "frames", w.Draft.Items[2].Type)
	assert.Equal(t, ItemForm{}, w.ItemForm)

	_, err = w.EditItem(3)
	assert.ErrorIs(t, err, ErrItemIndex)
}

func TestWizard_QuantityBoundsAtFieldChange(t *testing.T) {
	w := New("")
	w, err := w.SetItemField(validation.FieldItemQuantity, "-2")
	require.NoError(t, err)
	assert.NotEmpty(t, w.Errors[validation.FieldItemQuantity])

	w, _ = w.SetItemField(validation.FieldItemType, "wheels")
	w, _ = w.SetItemField(validation.FieldItemSize, "small")
	w, ok := w.SaveItem()
	assert.False(t, ok)
	assert.Empty(t, w.Draft.Items)

	w, _ = w.SetItemField(validation.FieldItemQuantity, "1001")
	_, ok = w.SaveItem()
	assert.False(t, ok)

	_, err = w.SetItemField("color", "red")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestWizard_PricingFollowsEveryChange(t *testing.T) {
	w := New("")
	w = addItem(t, w, "wheels", "medium", "5")
	assert.Equal(t, 125.0, w.Draft.Subtotal)
	assert.Equal(t, 125.0, w.Draft.Total)

	w = completeCoating(w)
	w, _ = w.SetCoatingField(validation.FieldCoatingType, "metallic")
	assert.Equal(t, 1.2, w.Draft.Coating.PriceMultiplier)
	assert.InDelta(t, 150.0, w.Draft.Total, 1e-9)

	w, err := w.ToggleService(ServiceRushOrder)
	require.NoError(t, err)
	assert.True(t, w.Draft.AdditionalServices.RushOrder)
	assert.InDelta(t, 187.5, w.Draft.Total, 1e-9)

	w, _ = w.ToggleService(ServiceRushOrder)
	assert.InDelta(t, 150.0, w.Draft.Total, 1e-9)

	_, err = w.ToggleService("gold_plating")
	assert.ErrorIs(t, err, ErrUnknownService)

	w, err = w.RemoveItem(0)
	require.NoError(t, err)
	assert.Zero(t, w.Draft.Subtotal)
	assert.Zero(t, w.Draft.Discount)
	assert.Zero(t, w.Draft.Total)
}

func TestWizard_PromoCode(t *testing.T) {
	w := New("")
	w = addItem(t, w, "brackets", "small", "30")

	w = w.ApplyPromoCode("welcome10")
	assert.Equal(t, "WELCOME10", w.Draft.PromoCode)
	assert.Empty(t, w.Errors[validation.FieldPromoCode])
	assert.Equal(t, 20.0, w.Draft.DiscountPercent)
	assert.InDelta(t, 240.0, w.Draft.Total, 1e-9)

	w = w.ApplyPromoCode("bogus")
	assert.Equal(t, "", w.Draft.PromoCode)
	assert.NotEmpty(t, w.Errors[validation.FieldPromoCode])
	assert.Equal(t, 10.0, w.Draft.DiscountPercent)

	w = w.ApplyPromoCode("")
	assert.Empty(t, w.Errors[validation.FieldPromoCode])
}

func TestWizard_TransitionsDoNotMutateReceiver(t *testing.T) {
	base := addItem(t, New(""), "wheels", "medium", "4")

	_, _ = base.RemoveItem(0)
	_, _ = base.ToggleService(ServiceSandblasting)
	_ = base.ApplyPromoCode("WELCOME10")
	_, _ = base.EditItem(0)
	_, _ = base.Next()

	require.Len(t, base.Draft.Items, 1)
	assert.False(t, base.Draft.AdditionalServices.Sandblasting)
	assert.Empty(t, base.Draft.PromoCode)
	assert.Nil(t, base.EditingIndex)
	assert.Equal(t, StepItems, base.Step)
	assert.Equal(t, 100.0, base.Draft.Total)
}

func TestWizard_RemoveShiftsEditIndex(t *testing.T) {
	w := New("")
	w = addItem(t, w, "wheels", "medium", "1")
	w = addItem(t, w, "brackets", "small", "2")
	w = addItem(t, w, "frames", "large", "3")

	w, _ = w.EditItem(2)
	w, err := w.RemoveItem(0)
	require.NoError(t, err)
	require.NotNil(t, w.EditingIndex)
	assert.Equal(t, 1, *w.EditingIndex)

	w, _ = w.RemoveItem(1)
	assert.Nil(t, w.EditingIndex)
	assert.Equal(t, ItemForm{}, w.ItemForm)

	_, err = w.RemoveItem(5)
	assert.ErrorIs(t, err, ErrItemIndex)
}

func TestWizard_TouchShowsError(t *testing.T) {
	w := New("")
	w, _ = w.SetContactField(validation.FieldEmail, "nope")
	assert.Empty(t, w.Errors[validation.FieldEmail], "untouched fields stay quiet")

	w = w.Touch(validation.FieldEmail)
	assert.NotEmpty(t, w.Errors[validation.FieldEmail])
	assert.True(t, w.Touched[validation.FieldEmail])

	w = w.Touch("somethingNew")
	assert.Empty(t, w.Errors["somethingNew"])
}

func TestWizard_FlatFeeMode(t *testing.T) {
	w := New(pricing.ModeFlatFee)
	assert.Equal(t, pricing.ModeFlatFee, w.ServiceMode)
	w = addItem(t, w, "wheels", "medium", "4")
	w, _ = w.ToggleService(ServiceSandblasting)
	assert.InDelta(t, 150.0, w.Draft.Total, 1e-9)
	assert.InDelta(t, 50.0, w.Pricing().ServicesSurcharge, 1e-9)
}
