package shipping

import (
	"context"

	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/domain/shipping"
)

// RateProvider fetches marked-up quotes for a destination and parcel.
// This decouples QuoteService from the concrete rate API client.
type RateProvider interface {
	Rates(ctx context.Context, to shipping.Address, parcel shipping.Parcel) ([]shipping.Quote, error)
}

// QuoteService turns a cart and destination into a sorted quote list
type QuoteService struct {
	rates RateProvider
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(rates RateProvider) *QuoteService {
	return &QuoteService{rates: rates}
}

// QuoteRequest is a quote request: where to ship and what is in the cart
type QuoteRequest struct {
	Destination shipping.Address    `json:"destination"`
	Items       []shipping.CartItem `json:"items"`
}

// Quote derives a parcel from the cart and fetches rates for it.
// Either the full sorted list comes back or an error does; there are
// no partial results.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) ([]shipping.Quote, error) {
	if !req.Destination.HasDestination() {
		return nil, shared.NewValidationError("destination with a country is required")
	}
	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("items are required")
	}

	parcel := shipping.DeriveParcel(req.Items)
	return s.rates.Rates(ctx, req.Destination, parcel)
}
