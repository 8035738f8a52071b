package catalog

import (
	"context"
	"sort"

	"github.com/griffix/backend/internal/domain/catalog"
	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/infrastructure/config"
)

// RowReader serves the cached rows of one sheet tab. This decouples
// the service from the concrete cache implementation.
type RowReader interface {
	Rows(ctx context.Context, tab string) ([]catalog.Row, error)
}

// Service answers storefront catalog reads. When no sheet is
// configured it serves a built-in placeholder catalog instead of
// erroring, so a fresh deployment renders something.
type Service struct {
	rows RowReader
	cfg  config.CatalogConfig
}

// NewService creates a new catalog Service
func NewService(rows RowReader, cfg config.CatalogConfig) *Service {
	return &Service{rows: rows, cfg: cfg}
}

func (s *Service) configured() bool {
	return s.cfg.SheetID != "" && s.cfg.APIKey != ""
}

// Products returns the product catalog.
func (s *Service) Products(ctx context.Context) ([]catalog.Product, error) {
	if !s.configured() {
		return placeholderProducts(), nil
	}

	rows, err := s.rows.Rows(ctx, s.cfg.ProductsTab)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, catalog.ProductFromRow(row))
	}
	return products, nil
}

// Product returns a single product by id.
func (s *Service) Product(ctx context.Context, id string) (*catalog.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Gallery returns the gallery entries sorted by their display order.
func (s *Service) Gallery(ctx context.Context) ([]catalog.GalleryItem, error) {
	if !s.configured() {
		return placeholderGallery(), nil
	}

	rows, err := s.rows.Rows(ctx, s.cfg.GalleryTab)
	if err != nil {
		return nil, err
	}

	items := make([]catalog.GalleryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, catalog.GalleryItemFromRow(row))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	return items, nil
}
