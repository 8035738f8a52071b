package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFromRow(t *testing.T) {
	t.Run("maps well-formed row", func(t *testing.T) {
		p := ProductFromRow(Row{
			"id":        "p-001",
			"name":      "Factory Replica Kit",
			"category":  "graphic-kit",
			"make":      "KTM",
			"model":     "SX 250",
			"year_from": "2019",
			"year_to":   "2022",
			"price":     "189.95",
			"sku":       "GRX-KTM-001",
			"image_url": "https://cdn.example.com/p-001.jpg",
			"in_stock":  "TRUE",
			"featured":  "true",
		})

		assert.Equal(t, "p-001", p.ID)
		assert.Equal(t, "graphic-kit", p.Category)
		require.NotNil(t, p.YearFrom)
		require.NotNil(t, p.YearTo)
		assert.Equal(t, 2019, *p.YearFrom)
		assert.Equal(t, 2022, *p.YearTo)
		assert.InDelta(t, 189.95, p.Price, 0.001)
		assert.True(t, p.InStock)
		assert.True(t, p.Featured)
	})

	t.Run("malformed cells degrade instead of failing", func(t *testing.T) {
		p := ProductFromRow(Row{
			"id":        "p-002",
			"price":     "call us",
			"year_from": "n/a",
			"in_stock":  "yes",
			"featured":  "",
		})

		assert.Zero(t, p.Price)
		assert.Nil(t, p.YearFrom)
		assert.Nil(t, p.YearTo)
		assert.False(t, p.InStock)
		assert.False(t, p.Featured)
	})
}

func TestGalleryItemFromRow(t *testing.T) {
	t.Run("maps well-formed row", func(t *testing.T) {
		g := GalleryItemFromRow(Row{
			"id":            "g-010",
			"tab":           "motocross",
			"title":         "2021 YZ450F custom",
			"bike_make":     "Yamaha",
			"bike_model":    "YZ450F",
			"customer_name": "Jesse",
			"featured":      "True",
			"order":         "3",
		})

		assert.Equal(t, "motocross", g.Tab)
		assert.Equal(t, 3, g.Order)
		assert.True(t, g.Featured)
	})

	t.Run("missing order sorts last", func(t *testing.T) {
		g := GalleryItemFromRow(Row{"id": "g-011", "order": ""})
		assert.Equal(t, 999, g.Order)
	})
}
