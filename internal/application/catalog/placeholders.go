package catalog

import "github.com/griffix/backend/internal/domain/catalog"

func intPtr(n int) *int { return &n }

// placeholderProducts is the catalog served before a sheet is wired up.
func placeholderProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID: "p1", Name: "KTM 250/350 SXF Stealth Kit", Category: "graphic-kit",
			Make: "KTM", Model: "250/350 SXF", YearFrom: intPtr(2023), YearTo: intPtr(2025),
			Price: 249, SKU: "GRX-KTM-SXF-2325",
			Description: "Full graphic kit for KTM SXF, 3M laminate, UV rated.",
			InStock:     true, Featured: true,
		},
		{
			ID: "p2", Name: "Husqvarna FE 350 Coyote Kit", Category: "graphic-kit",
			Make: "Husqvarna", Model: "FE 350", YearFrom: intPtr(2023), YearTo: intPtr(2025),
			Price: 249, SKU: "GRX-HQV-FE350-2325",
			Description: "Enduro graphic kit with Coyote Tan colourway.",
			InStock:     true, Featured: true,
		},
		{
			ID: "p3", Name: "Yamaha YZ250F Acid Kit", Category: "graphic-kit",
			Make: "Yamaha", Model: "YZ250F", YearFrom: intPtr(2024), YearTo: intPtr(2025),
			Price: 229, SKU: "GRX-YAM-YZ250F-2425",
			Description: "Acid Lime signature kit for Yamaha YZ250F.",
			InStock:     true, Featured: true,
		},
		{
			ID: "p4", Name: "Honda CRF 450R Stealth Kit", Category: "graphic-kit",
			Make: "Honda", Model: "CRF 450R", YearFrom: intPtr(2021), YearTo: intPtr(2024),
			Price: 229, SKU: "GRX-HON-CRF450R-2124",
			Description: "Stealth Charcoal full kit for Honda CRF 450R.",
			InStock:     true, Featured: true,
		},
		{
			ID: "p5", Name: "KTM Gripper Seat Cover", Category: "seat-cover",
			Make: "KTM", Model: "250/350 SXF", YearFrom: intPtr(2023), YearTo: intPtr(2025),
			Price: 89, SKU: "GRX-SC-KTM-SXF-2325",
			Description: "Gripper seat cover matched to Griffix graphic kits.",
			InStock:     true,
		},
		{
			ID: "p6", Name: "Universal Number Plate Kit", Category: "number-plate",
			Model: "Universal", Price: 49, SKU: "GRX-NP-UNI",
			Description: "Custom printed number plates, set of 3.",
			InStock:     true,
		},
	}
}

// placeholderGallery is the gallery served before a sheet is wired up.
func placeholderGallery() []catalog.GalleryItem {
	return []catalog.GalleryItem{
		{ID: "g1", Tab: "our-designs", Title: "Stealth KTM Build", BikeMake: "KTM", BikeModel: "EXC 300", Featured: true, Order: 1},
		{ID: "g2", Tab: "our-designs", Title: "Coyote Husqvarna", BikeMake: "Husqvarna", BikeModel: "TE 300i", Featured: true, Order: 2},
		{ID: "g3", Tab: "customer-builds", Title: "Jake's Race KTM", BikeMake: "KTM", BikeModel: "350 SXF", CustomerName: "Jake K.", Featured: true, Order: 1},
		{ID: "g4", Tab: "customer-builds", Title: "Sam's Woods Husqy", BikeMake: "Husqvarna", BikeModel: "FE 350", CustomerName: "Sam R.", Order: 2},
		{ID: "g5", Tab: "plastic-kits", Title: "KTM Full Plastics", BikeMake: "KTM", BikeModel: "250 SXF", Featured: true, Order: 1},
	}
}
