package catalog

import (
	"strconv"
	"strings"
)

// Dataset identifies a catalog sheet tab.
type Dataset string

const (
	DatasetProducts Dataset = "Products"
	DatasetGallery  Dataset = "Gallery"
)

// Row is a single sheet row keyed by the trimmed header names.
type Row map[string]string

// Product is a catalog listing backed by the Products tab.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	YearFrom    *int    `json:"year_from"`
	YearTo      *int    `json:"year_to"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	InStock     bool    `json:"in_stock"`
	Featured    bool    `json:"featured"`
}

// GalleryItem is a showcase entry backed by the Gallery tab.
type GalleryItem struct {
	ID           string `json:"id"`
	Tab          string `json:"tab"`
	Title        string `json:"title"`
	BikeMake     string `json:"bike_make"`
	BikeModel    string `json:"bike_model"`
	ImageURL     string `json:"image_url"`
	CustomerName string `json:"customer_name"`
	Featured     bool   `json:"featured"`
	Order        int    `json:"order"`
}

// ProductFromRow maps a sheet row onto a Product. Malformed numeric
// cells degrade to zero values rather than failing the whole dataset.
func ProductFromRow(r Row) Product {
	return Product{
		ID:          r["id"],
		Name:        r["name"],
		Category:    r["category"],
		Make:        r["make"],
		Model:       r["model"],
		YearFrom:    intOrNil(r["year_from"]),
		YearTo:      intOrNil(r["year_to"]),
		Price:       floatOrZero(r["price"]),
		SKU:         r["sku"],
		ImageURL:    r["image_url"],
		Description: r["description"],
		InStock:     isTrue(r["in_stock"]),
		Featured:    isTrue(r["featured"]),
	}
}

// GalleryItemFromRow maps a sheet row onto a GalleryItem. Items with a
// missing or malformed order sort last.
func GalleryItemFromRow(r Row) GalleryItem {
	return GalleryItem{
		ID:           r["id"],
		Tab:          r["tab"],
		Title:        r["title"],
		BikeMake:     r["bike_make"],
		BikeModel:    r["bike_model"],
		ImageURL:     r["image_url"],
		CustomerName: r["customer_name"],
		Featured:     isTrue(r["featured"]),
		Order:        intOrDefault(r["order"], 999),
	}
}

func floatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func intOrNil(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

func intOrDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return def
	}
	return n
}

func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
