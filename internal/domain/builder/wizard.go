// Package builder holds the multi-step quote builder.
//
// A Wizard is a value. Every transition returns a new Wizard with the draft
// repriced in full, and never mutates the receiver.
package builder

import (
	"errors"
	"strconv"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
	"coatingshop/internal/domain/validation"
)

type Step int

const (
	StepItems    Step = 1
	StepCoating  Step = 2
	StepServices Step = 3
	StepContact  Step = 4
)

const (
	FirstStep = StepItems
	LastStep  = StepContact
)

// FieldItems is the error key used when step 1 has no items.
const FieldItems = "items"

var (
	ErrItemIndex      = errors.New("item index out of range")
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownService = errors.New("unknown additional service")
)

// ItemForm is the item being entered or edited on step 1. Quantity stays
// textual until the item is saved so a bad keystroke can be reported.
type ItemForm struct {
	Type     string `json:"type"`
	Size     string `json:"size"`
	Quantity string `json:"quantity"`
}

type Wizard struct {
	Draft        entities.QuoteDraft `json:"draft"`
	Step         Step                `json:"step"`
	ItemForm     ItemForm            `json:"item_form"`
	EditingIndex *int                `json:"editing_index"`
	Errors       map[string]string   `json:"errors"`
	Touched      map[string]bool     `json:"touched"`
	ServiceMode  string              `json:"service_mode"`
}

// New starts an empty wizard on step 1. serviceMode selects the additional
// service pricing rule (see pricing.StrategyFor).
func New(serviceMode string) Wizard {
	w := Wizard{
		Step:        StepItems,
		Errors:      map[string]string{},
		Touched:     map[string]bool{},
		ServiceMode: pricing.StrategyFor(serviceMode).Name(),
	}
	w.Draft.Items = []entities.QuoteItem{}
	w.Draft = pricing.Apply(w.Draft, w.strategy())
	return w
}

func (w Wizard) strategy() pricing.ServiceStrategy {
	return pricing.StrategyFor(w.ServiceMode)
}

// Pricing returns the full breakdown for the current draft.
func (w Wizard) Pricing() pricing.Breakdown {
	return pricing.Compute(w.Draft, w.strategy())
}

func (w Wizard) clone() Wizard {
	out := w
	out.Draft = w.Draft.Clone()
	out.Errors = make(map[string]string, len(w.Errors))
	for k, v := range w.Errors {
		out.Errors[k] = v
	}
	out.Touched = make(map[string]bool, len(w.Touched))
	for k, v := range w.Touched {
		out.Touched[k] = v
	}
	if w.EditingIndex != nil {
		i := *w.EditingIndex
		out.EditingIndex = &i
	}
	return out
}

func (w *Wizard) reprice() {
	w.Draft = pricing.Apply(w.Draft, w.strategy())
}

func (w *Wizard) setError(field, msg string) {
	if msg == "" {
		delete(w.Errors, field)
		return
	}
	w.Errors[field] = msg
}

// record stores the field error only once the field has been touched.
func (w *Wizard) record(field, value string) {
	if !w.Touched[field] {
		return
	}
	w.setError(field, validation.Field(field, value))
}

// Touch marks a field as visited and shows its current error, if any.
func (w Wizard) Touch(field string) Wizard {
	out := w.clone()
	out.Touched[field] = true
	if field == FieldItems {
		out.setError(FieldItems, itemsError(out.Draft))
		return out
	}
	value, _ := out.fieldValue(field)
	out.setError(field, validation.Field(field, value))
	return out
}

func (w Wizard) fieldValue(field string) (string, bool) {
	switch field {
	case validation.FieldItemType:
		return w.ItemForm.Type, true
	case validation.FieldItemSize:
		return w.ItemForm.Size, true
	case validation.FieldItemQuantity:
		return w.ItemForm.Quantity, true
	case validation.FieldCoatingType:
		return w.Draft.Coating.Type, true
	case validation.FieldCoatingColor:
		return w.Draft.Coating.Color, true
	case validation.FieldCoatingFinish:
		return w.Draft.Coating.Finish, true
	case validation.FieldName:
		return w.Draft.ContactInfo.Name, true
	case validation.FieldEmail:
		return w.Draft.ContactInfo.Email, true
	case validation.FieldPhone:
		return w.Draft.ContactInfo.Phone, true
	case validation.FieldNotes:
		return w.Draft.ContactInfo.Notes, true
	case validation.FieldPromoCode:
		return w.Draft.PromoCode, true
	}
	return "", false
}

// Validate returns the blocking errors of a step. Step 3 never blocks.
func (w Wizard) Validate(step Step) map[string]string {
	switch step {
	case StepItems:
		if msg := itemsError(w.Draft); msg != "" {
			return map[string]string{FieldItems: msg}
		}
	case StepCoating:
		return validation.Coating(w.Draft.Coating)
	case StepContact:
		return validation.Contact(w.Draft.ContactInfo)
	}
	return map[string]string{}
}

func itemsError(d entities.QuoteDraft) string {
	if len(d.Items) == 0 {
		return "Please add at least one item"
	}
	return ""
}

// Next validates the current step and advances when it is valid. The returned
// errors are empty when the step was valid; the step never passes LastStep.
func (w Wizard) Next() (Wizard, map[string]string) {
	out := w.clone()
	errs := out.Validate(out.Step)
	if len(errs) > 0 {
		for field, msg := range errs {
			out.Touched[field] = true
			out.Errors[field] = msg
		}
		return out, errs
	}
	if out.Step < LastStep {
		out.Step++
	}
	return out, errs
}

// Previous goes back one step without validating.
func (w Wizard) Previous() Wizard {
	out := w.clone()
	if out.Step > FirstStep {
		out.Step--
	}
	return out
}

// Ready reports whether every blocking step is valid, i.e. the draft can be submitted.
func (w Wizard) Ready() (bool, map[string]string) {
	all := map[string]string{}
	for s := FirstStep; s <= LastStep; s++ {
		for k, v := range w.Validate(s) {
			all[k] = v
		}
	}
	return len(all) == 0, all
}

func quantityValue(q int) string {
	if q == 0 {
		return ""
	}
	return strconv.Itoa(q)
}
