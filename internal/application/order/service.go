package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/order"
)

// Notifier fans out the post-checkout emails. Implementations must
// not block the caller and must swallow their own failures.
type Notifier interface {
	Dispatch(o *order.Order)
}

// Service handles order submission and admin management
type Service struct {
	repo     order.Repository
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates a new order Service
func NewService(repo order.Repository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// SubmitRequest is the checkout payload
type SubmitRequest struct {
	Customer      order.Customer          `json:"customer"`
	Items         []order.OrderItem       `json:"items"`
	Shipping      order.ShippingSelection `json:"shipping"`
	PaymentMethod string                  `json:"paymentMethod"`
	Subtotal      float64                 `json:"subtotal"`
}

// SubmitResponse acknowledges a persisted order
type SubmitResponse struct {
	Success bool    `json:"success"`
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}

// Submit validates the payload, persists the new order, then fires
// the notifications. The order must be durably saved before any email
// goes out; notification failures never affect the response.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	o, err := order.NewOrder(req.Customer, req.Items, req.Shipping, req.PaymentMethod, req.Subtotal)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order accepted",
		zap.String("order_id", o.OrderID),
		zap.Float64("total", o.Total))

	s.notifier.Dispatch(o)

	return &SubmitResponse{Success: true, OrderID: o.OrderID, Total: o.Total}, nil
}

// List returns every order, newest first
func (s *Service) List(ctx context.Context) ([]order.Order, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single order by its public id
func (s *Service) Get(ctx context.Context, orderID string) (*order.Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

// UpdateStatus moves an order to the given status and returns the
// updated record
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*order.Order, error) {
	updated, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		zap.String("order_id", orderID),
		zap.String("status", updated.Status))
	return updated, nil
}
