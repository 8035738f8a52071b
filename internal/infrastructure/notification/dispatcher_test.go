package notification

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/order"
	"github.com/griffix/backend/internal/domain/shipping"
)

type recordingMailer struct {
	ownerCalls    atomic.Int32
	customerCalls atomic.Int32
	ownerErr      error
	customerErr   error
}

func (m *recordingMailer) SendOwnerNotification(ctx context.Context, o *order.Order) error {
	m.ownerCalls.Add(1)
	return m.ownerErr
}

func (m *recordingMailer) SendCustomerConfirmation(ctx context.Context, o *order.Order) error {
	m.customerCalls.Add(1)
	return m.customerErr
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		order.Customer{Name: "Jesse", Email: "jesse@example.com"},
		[]order.OrderItem{{Name: "Kit", Qty: 1, Price: 100}},
		order.ShippingSelection{
			Provider: "AusPost", Amount: 10, Currency: "AUD",
			Address: shipping.Address{Country: "AU"},
		},
		"", 100,
	)
	require.NoError(t, err)
	return o
}

func TestDispatch(t *testing.T) {
	t.Run("sends both emails", func(t *testing.T) {
		mailer := &recordingMailer{}
		d := NewDispatcher(mailer, zap.NewNop())

		d.Dispatch(testOrder(t))
		d.Wait()

		assert.EqualValues(t, 1, mailer.ownerCalls.Load())
		assert.EqualValues(t, 1, mailer.customerCalls.Load())
	})

	t.Run("one failure never stops the other send", func(t *testing.T) {
		mailer := &recordingMailer{ownerErr: errors.New("relay refused")}
		d := NewDispatcher(mailer, zap.NewNop())

		d.Dispatch(testOrder(t))
		d.Wait()

		assert.EqualValues(t, 1, mailer.customerCalls.Load())
	})

	t.Run("both failures settle quietly", func(t *testing.T) {
		mailer := &recordingMailer{
			ownerErr:    errors.New("relay refused"),
			customerErr: errors.New("mailbox full"),
		}
		d := NewDispatcher(mailer, zap.NewNop())

		d.Dispatch(testOrder(t))
		d.Wait()

		assert.EqualValues(t, 1, mailer.ownerCalls.Load())
		assert.EqualValues(t, 1, mailer.customerCalls.Load())
	})
}
