package order

import "context"

// Repository defines the interface for order persistence
type Repository interface {
	// Save persists a new order
	Save(ctx context.Context, o *Order) error

	// FindByID finds an order by its public id
	FindByID(ctx context.Context, orderID string) (*Order, error)

	// FindAll returns all orders, newest first
	FindAll(ctx context.Context) ([]Order, error)

	// UpdateStatus changes the status of a single order and returns
	// the updated record
	UpdateStatus(ctx context.Context, orderID, status string) (*Order, error)
}
