package order

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/domain/shipping"
)

// StatusPending is the status every new order starts in. Further
// statuses are free-form and assigned by the shop owner from the
// admin screen, so they are not enumerated here.
const StatusPending = "pending"

// Customer identifies who placed the order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderItem is a single cart line as submitted at checkout.
type OrderItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Make     string  `json:"make,omitempty"`
	Model    string  `json:"model,omitempty"`
	Year     string  `json:"year,omitempty"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
}

// ShippingSelection is the rate the customer picked at checkout,
// together with the destination address.
type ShippingSelection struct {
	RateID       string           `json:"rateId,omitempty"`
	Provider     string           `json:"provider"`
	ServiceLevel string           `json:"servicelevel"`
	Amount       float64          `json:"amount"`
	Currency     string           `json:"currency"`
	Address      shipping.Address `json:"address"`
}

// IsZero reports whether no shipping option was submitted at all.
func (s ShippingSelection) IsZero() bool {
	return s.Provider == "" && s.Amount == 0 && s.Address.Country == ""
}

// Order is the aggregate persisted for every checkout submission.
type Order struct {
	OrderID       string            `gorm:"primaryKey;type:varchar(16)" json:"orderId"`
	CreatedAt     time.Time         `gorm:"not null" json:"createdAt"`
	Status        string            `gorm:"type:varchar(32);not null;index" json:"status"`
	Customer      Customer          `gorm:"serializer:json;type:text" json:"customer"`
	Items         []OrderItem       `gorm:"serializer:json;type:text" json:"items"`
	Shipping      ShippingSelection `gorm:"serializer:json;type:text" json:"shipping"`
	PaymentMethod string            `gorm:"type:varchar(64)" json:"paymentMethod"`
	Subtotal      float64           `gorm:"not null" json:"subtotal"`
	Total         float64           `gorm:"not null" json:"total"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder validates the checkout payload and builds a pending order.
// The total is always recomputed from subtotal plus the selected
// shipping amount, never taken from the client.
func NewOrder(customer Customer, items []OrderItem, ship ShippingSelection, paymentMethod string, subtotal float64) (*Order, error) {
	var missing []string
	if strings.TrimSpace(customer.Name) == "" {
		missing = append(missing, "customer.name")
	}
	if strings.TrimSpace(customer.Email) == "" {
		missing = append(missing, "customer.email")
	}
	if len(items) == 0 {
		missing = append(missing, "items")
	}
	if ship.IsZero() {
		missing = append(missing, "shipping")
	}
	if len(missing) > 0 {
		return nil, shared.NewValidationError("missing required order fields: %s", strings.Join(missing, ", "))
	}

	if subtotal < 0 {
		subtotal = 0
	}
	if paymentMethod == "" {
		paymentMethod = "Not specified"
	}

	// Malformed lines degrade rather than reject: a missing quantity
	// still means the customer wants one, a negative price means free.
	for i := range items {
		if items[i].Qty <= 0 {
			items[i].Qty = 1
		}
		if items[i].Price < 0 {
			items[i].Price = 0
		}
	}

	return &Order{
		OrderID:       newOrderID(),
		CreatedAt:     time.Now().UTC(),
		Status:        StatusPending,
		Customer:      customer,
		Items:         items,
		Shipping:      ship,
		PaymentMethod: paymentMethod,
		Subtotal:      subtotal,
		Total:         subtotal + ship.Amount,
	}, nil
}

// SetStatus moves the order to the given status. Any non-empty
// status is accepted.
func (o *Order) SetStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return shared.NewValidationError("status must not be empty")
	}
	o.Status = status
	return nil
}

func newOrderID() string {
	return "GRX-" + strings.ToUpper(uuid.NewString()[:8])
}
