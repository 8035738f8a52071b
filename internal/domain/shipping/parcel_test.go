package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveParcel(t *testing.T) {
	t.Run("empty cart yields default parcel", func(t *testing.T) {
		parcel := DeriveParcel(nil)

		assert.True(t, parcel.Mass.Equal(decimal.NewFromFloat(0.5)), "mass = %s", parcel.Mass)
		assert.True(t, parcel.Length.Equal(decimal.NewFromInt(40)))
		assert.True(t, parcel.Width.Equal(decimal.NewFromInt(30)))
		assert.True(t, parcel.Height.Equal(decimal.NewFromInt(5)))
	})

	t.Run("mass accumulates per quantity", func(t *testing.T) {
		parcel := DeriveParcel([]CartItem{
			{Category: "graphic-kit", Quantity: 2}, // 2 x 0.5
			{Category: "seat-cover", Quantity: 3},  // 3 x 0.3
		})

		assert.True(t, parcel.Mass.Equal(decimal.NewFromFloat(1.9)), "mass = %s", parcel.Mass)
	})

	t.Run("dimensions take the max, never the sum", func(t *testing.T) {
		parcel := DeriveParcel([]CartItem{
			{Category: "graphic-kit", Quantity: 1},  // 40x30x5
			{Category: "plastic-kit", Quantity: 1},  // 60x40x20
			{Category: "number-plate", Quantity: 4}, // 25x15x2
		})

		assert.True(t, parcel.Length.Equal(decimal.NewFromInt(60)))
		assert.True(t, parcel.Width.Equal(decimal.NewFromInt(40)))
		assert.True(t, parcel.Height.Equal(decimal.NewFromInt(20)))
	})

	t.Run("unknown category falls back to accessory preset", func(t *testing.T) {
		parcel := DeriveParcel([]CartItem{{Category: "mystery-part", Quantity: 1}})
		want := PresetFor(DefaultCategory)

		assert.True(t, parcel.Mass.Equal(want.Mass))
		assert.True(t, parcel.Length.Equal(want.Length))
	})

	t.Run("zero quantity counts as one", func(t *testing.T) {
		parcel := DeriveParcel([]CartItem{{Category: "number-plate", Quantity: 0}})

		assert.True(t, parcel.Mass.Equal(decimal.NewFromFloat(0.2)), "mass = %s", parcel.Mass)
	})
}

func TestSortQuotes(t *testing.T) {
	t.Run("sorts by amount ascending", func(t *testing.T) {
		quotes := []Quote{
			{Provider: "TNT", Amount: decimal.NewFromFloat(22.40)},
			{Provider: "AusPost", Amount: decimal.NewFromFloat(13.75)},
			{Provider: "DHL", Amount: decimal.NewFromFloat(41.00)},
		}

		SortQuotes(quotes)

		assert.Equal(t, "AusPost", quotes[0].Provider)
		assert.Equal(t, "TNT", quotes[1].Provider)
		assert.Equal(t, "DHL", quotes[2].Provider)
		for i := 0; i < len(quotes)-1; i++ {
			assert.True(t, quotes[i].Amount.LessThanOrEqual(quotes[i+1].Amount))
		}
	})

	t.Run("equal amounts tie-break by provider name", func(t *testing.T) {
		quotes := []Quote{
			{Provider: "Sendle", Amount: decimal.NewFromFloat(9.90)},
			{Provider: "AusPost", Amount: decimal.NewFromFloat(9.90)},
		}

		SortQuotes(quotes)

		assert.Equal(t, "AusPost", quotes[0].Provider)
		assert.Equal(t, "Sendle", quotes[1].Provider)
	})
}
