package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/order"
)

// dispatchTimeout bounds the background sends so a wedged SMTP relay
// cannot pin goroutines forever.
const dispatchTimeout = 30 * time.Second

// Dispatcher fans out the owner and customer emails for a submitted
// order without blocking the request path. Both sends always run;
// a failure of one never cancels the other, and failures are only
// logged, never surfaced to the caller.
type Dispatcher struct {
	mailer Mailer
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given mailer.
func NewDispatcher(mailer Mailer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, logger: logger}
}

// Dispatch sends both order emails in the background and returns
// immediately.
func (d *Dispatcher) Dispatch(o *order.Order) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			if err := d.mailer.SendOwnerNotification(ctx, o); err != nil {
				d.logger.Error("owner notification failed",
					zap.String("order_id", o.OrderID),
					zap.Error(err))
			}
		}()
		go func() {
			defer inner.Done()
			if err := d.mailer.SendCustomerConfirmation(ctx, o); err != nil {
				d.logger.Error("customer confirmation failed",
					zap.String("order_id", o.OrderID),
					zap.String("recipient", o.Customer.Email),
					zap.Error(err))
			}
		}()
		inner.Wait()
	}()
}

// Wait blocks until every in-flight dispatch has settled, used on
// shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
