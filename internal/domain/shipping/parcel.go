package shipping

import (
	"github.com/shopspring/decimal"
)

// CartItem is the quote-time view of a cart line: only the category and
// quantity matter for parcel sizing
type CartItem struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// ParcelPreset holds the packed mass and box dimensions assumed for one
// product category (mass in kg, dimensions in cm)
type ParcelPreset struct {
	Mass   decimal.Decimal
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
}

// DefaultCategory is the preset used when an item carries an unknown or
// missing category
const DefaultCategory = "accessory"

// parcelPresets maps product categories to their shipping presets
var parcelPresets = map[string]ParcelPreset{
	"graphic-kit":  {Mass: decimal.NewFromFloat(0.5), Length: decimal.NewFromInt(40), Width: decimal.NewFromInt(30), Height: decimal.NewFromInt(5)},
	"seat-cover":   {Mass: decimal.NewFromFloat(0.3), Length: decimal.NewFromInt(30), Width: decimal.NewFromInt(25), Height: decimal.NewFromInt(5)},
	"plastic-kit":  {Mass: decimal.NewFromFloat(2.0), Length: decimal.NewFromInt(60), Width: decimal.NewFromInt(40), Height: decimal.NewFromInt(20)},
	"number-plate": {Mass: decimal.NewFromFloat(0.2), Length: decimal.NewFromInt(25), Width: decimal.NewFromInt(15), Height: decimal.NewFromInt(2)},
	"accessory":    {Mass: decimal.NewFromFloat(0.2), Length: decimal.NewFromInt(20), Width: decimal.NewFromInt(15), Height: decimal.NewFromInt(5)},
}

// Fallbacks for an empty cart: a parcel must always have positive mass
// and dimensions
var (
	defaultMass   = decimal.NewFromFloat(0.5)
	defaultLength = decimal.NewFromInt(40)
	defaultWidth  = decimal.NewFromInt(30)
	defaultHeight = decimal.NewFromInt(5)
)

// Parcel is a single abstracted shipping box representing an entire cart.
// It is derived per quote request and never persisted.
type Parcel struct {
	Mass   decimal.Decimal // kg
	Length decimal.Decimal // cm
	Width  decimal.Decimal // cm
	Height decimal.Decimal // cm
}

// PresetFor returns the parcel preset for a category, falling back to the
// default preset for unknown categories
func PresetFor(category string) ParcelPreset {
	if preset, ok := parcelPresets[category]; ok {
		return preset
	}
	return parcelPresets[DefaultCategory]
}

// DeriveParcel derives a single parcel from the cart items: masses are
// summed per quantity, dimensions take the maximum across all presets
// touched (items are assumed packable into one box sized to the largest).
// Pure and total: an empty cart yields the default parcel.
func DeriveParcel(items []CartItem) Parcel {
	mass := decimal.Zero
	length, width, height := decimal.Zero, decimal.Zero, decimal.Zero

	for _, item := range items {
		preset := PresetFor(item.Category)
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		mass = mass.Add(preset.Mass.Mul(decimal.NewFromInt(int64(qty))))
		length = decimal.Max(length, preset.Length)
		width = decimal.Max(width, preset.Width)
		height = decimal.Max(height, preset.Height)
	}

	if mass.IsZero() {
		mass = defaultMass
	}
	if length.IsZero() {
		length = defaultLength
	}
	if width.IsZero() {
		width = defaultWidth
	}
	if height.IsZero() {
		height = defaultHeight
	}

	return Parcel{Mass: mass, Length: length, Width: width, Height: height}
}
