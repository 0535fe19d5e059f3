package entities

import "strings"

// ItemType is a category of part the shop coats. BasePrice is per unit.
type ItemType struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	BasePrice float64 `json:"base_price"`
}

// CoatingType is a powder family. PriceMultiplier scales the item subtotal.
type CoatingType struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// Option is a plain catalog choice (size bucket, color, finish).
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Catalog struct {
	ItemTypes    []ItemType    `json:"item_types"`
	Sizes        []Option      `json:"sizes"`
	CoatingTypes []CoatingType `json:"coating_types"`
	Colors       []Option      `json:"colors"`
	Finishes     []Option      `json:"finishes"`
}

const (
	MinItemQuantity = 1
	MaxItemQuantity = 1000
)

var itemTypes = []ItemType{
	{ID: "wheels", Label: "Wheels & Rims", BasePrice: 25},
	{ID: "automotive_parts", Label: "Automotive Parts", BasePrice: 35},
	{ID: "motorcycle_parts", Label: "Motorcycle Parts", BasePrice: 30},
	{ID: "brackets", Label: "Brackets & Small Parts", BasePrice: 10},
	{ID: "furniture", Label: "Furniture", BasePrice: 60},
	{ID: "railings", Label: "Railings & Gates", BasePrice: 45},
	{ID: "frames", Label: "Frames", BasePrice: 75},
	{ID: "custom", Label: "Custom Project", BasePrice: 50},
}

var sizes = []Option{
	{ID: "small", Label: "Small (under 12\")"},
	{ID: "medium", Label: "Medium (12\" - 24\")"},
	{ID: "large", Label: "Large (24\" - 48\")"},
	{ID: "xlarge", Label: "Extra Large (over 48\")"},
}

var coatingTypes = []CoatingType{
	{ID: "standard", Label: "Standard Powder", PriceMultiplier: 1.0},
	{ID: "metallic", Label: "Metallic", PriceMultiplier: 1.2},
	{ID: "textured", Label: "Textured", PriceMultiplier: 1.15},
	{ID: "candy", Label: "Candy / Transparent", PriceMultiplier: 1.4},
	{ID: "high_temp", Label: "High Temperature", PriceMultiplier: 1.3},
}

var colors = []Option{
	{ID: "black", Label: "Black"},
	{ID: "white", Label: "White"},
	{ID: "silver", Label: "Silver"},
	{ID: "red", Label: "Red"},
	{ID: "blue", Label: "Blue"},
	{ID: "bronze", Label: "Bronze"},
	{ID: "gunmetal", Label: "Gunmetal"},
	{ID: "custom", Label: "Custom Match"},
}

var finishes = []Option{
	{ID: "gloss", Label: "Gloss"},
	{ID: "satin", Label: "Satin"},
	{ID: "matte", Label: "Matte"},
	{ID: "wrinkle", Label: "Wrinkle"},
}

var promoCodes = map[string]float64{
	"WELCOME10": 10,
}

// DefaultCatalog returns a copy of the shop catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		ItemTypes:    append([]ItemType(nil), itemTypes...),
		Sizes:        append([]Option(nil), sizes...),
		CoatingTypes: append([]CoatingType(nil), coatingTypes...),
		Colors:       append([]Option(nil), colors...),
		Finishes:     append([]Option(nil), finishes...),
	}
}

func LookupItemType(id string) (ItemType, bool) {
	for _, it := range itemTypes {
		if it.ID == id {
			return it, true
		}
	}
	return ItemType{}, false
}

func LookupCoatingType(id string) (CoatingType, bool) {
	for _, ct := range coatingTypes {
		if ct.ID == id {
			return ct, true
		}
	}
	return CoatingType{}, false
}

func IsSize(id string) bool   { return hasOption(sizes, id) }
func IsColor(id string) bool  { return hasOption(colors, id) }
func IsFinish(id string) bool { return hasOption(finishes, id) }

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// NormalizePromoCode trims and upper-cases a user supplied code.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoDiscountPercent returns the percentage points a code grants. Matching is case-insensitive.
func PromoDiscountPercent(code string) (float64, bool) {
	pct, ok := promoCodes[NormalizePromoCode(code)]
	return pct, ok
}
