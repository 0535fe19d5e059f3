// Package validation maps a single form field value to an error message.
//
// Rules are stateless and look only at the value passed in. An empty string
// means the value is acceptable; unknown field names are always acceptable so
// new optional fields do not break existing callers.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"coatingshop/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const (
	FieldItemType      = "type"
	FieldItemSize      = "size"
	FieldItemQuantity  = "quantity"
	FieldCoatingType   = "coating.type"
	FieldCoatingColor  = "coating.color"
	FieldCoatingFinish = "coating.finish"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldNotes         = "notes"
	FieldPromoCode     = "promoCode"
)

const maxNotesLength = 1000

var (
	validate     = validator.New()
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneChars   = regexp.MustCompile(`^[0-9+()\-.\s]+$`)
)

// Field validates one field value.
func Field(name, value string) string {
	value = strings.TrimSpace(value)

	switch name {
	case FieldItemType:
		if value == "" {
			return "Please select an item type"
		}
		if _, ok := entities.LookupItemType(value); !ok {
			return "Unknown item type"
		}
	case FieldItemSize:
		if value == "" {
			return "Please select a size"
		}
		if !entities.IsSize(value) {
			return "Unknown size"
		}
	case FieldItemQuantity:
		return quantity(value)
	case FieldCoatingType:
		if value == "" {
			return "Please select a coating type"
		}
		if _, ok := entities.LookupCoatingType(value); !ok {
			return "Unknown coating type"
		}
	case FieldCoatingColor:
		if value == "" {
			return "Please select a color"
		}
		if !entities.IsColor(value) {
			return "Unknown color"
		}
	case FieldCoatingFinish:
		if value == "" {
			return "Please select a finish"
		}
		if !entities.IsFinish(value) {
			return "Unknown finish"
		}
	case FieldName:
		if value == "" {
			return "Name is required"
		}
		if len([]rune(value)) < 2 {
			return "Name must be at least 2 characters"
		}
	case FieldEmail:
		if value == "" {
			return "Email is required"
		}
		if !IsEmail(value) {
			return "Please enter a valid email address"
		}
	case FieldPhone:
		return phone(value)
	case FieldNotes:
		if len([]rune(value)) > maxNotesLength {
			return fmt.Sprintf("Notes must be %d characters or fewer", maxNotesLength)
		}
	case FieldPromoCode:
		if value == "" {
			return ""
		}
		if _, ok := entities.PromoDiscountPercent(value); !ok {
			return "Invalid promo code"
		}
	}
	return ""
}

// IsEmail checks the address against the validator email rule and a plain
// local@domain.tld shape.
func IsEmail(value string) bool {
	if !emailPattern.MatchString(value) {
		return false
	}
	return validate.Var(value, "email") == nil
}

func quantity(value string) string {
	if value == "" {
		return "Quantity is required"
	}
	q, err := strconv.Atoi(value)
	if err != nil {
		return "Quantity must be a whole number"
	}
	if q < entities.MinItemQuantity || q > entities.MaxItemQuantity {
		return fmt.Sprintf("Quantity must be between %d and %d", entities.MinItemQuantity, entities.MaxItemQuantity)
	}
	return ""
}

func phone(value string) string {
	if value == "" {
		return "Phone is required"
	}
	if !phoneChars.MatchString(value) {
		return "Please enter a valid phone number"
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 || digits > 15 {
		return "Please enter a valid phone number"
	}
	return ""
}

// Item validates every field of an item, keyed by field name.
func Item(it entities.QuoteItem) map[string]string {
	return collect(map[string]string{
		FieldItemType:     Field(FieldItemType, it.Type),
		FieldItemSize:     Field(FieldItemSize, it.Size),
		FieldItemQuantity: Field(FieldItemQuantity, strconv.Itoa(it.Quantity)),
	})
}

func Coating(c entities.Coating) map[string]string {
	return collect(map[string]string{
		FieldCoatingType:   Field(FieldCoatingType, c.Type),
		FieldCoatingColor:  Field(FieldCoatingColor, c.Color),
		FieldCoatingFinish: Field(FieldCoatingFinish, c.Finish),
	})
}

func Contact(c entities.ContactInfo) map[string]string {
	return collect(map[string]string{
		FieldName:  Field(FieldName, c.Name),
		FieldEmail: Field(FieldEmail, c.Email),
		FieldPhone: Field(FieldPhone, c.Phone),
		FieldNotes: Field(FieldNotes, c.Notes),
	})
}

func collect(in map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range in {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
