package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/order"
	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/domain/shipping"
	"github.com/griffix/backend/internal/infrastructure/config"
)

func newTestRepo(t *testing.T) *GormOrderRepository {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGormOrderRepository(db.DB, zap.NewNop())
}

func makeOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		order.Customer{Name: "Jesse Pinkman", Email: "jesse@example.com", Phone: "0400 000 000"},
		[]order.OrderItem{
			{Name: "Factory Replica Kit", Category: "graphic-kit", Qty: 1, Price: 189.95},
			{Name: "Number Plate Set", Category: "number-plate", Qty: 2, Price: 29.95},
		},
		order.ShippingSelection{
			RateID:       "rate_abc",
			Provider:     "AusPost",
			ServiceLevel: "Express",
			Amount:       14.85,
			Currency:     "AUD",
			Address: shipping.Address{
				Street1: "1 Pit Lane",
				City:    "Melbourne",
				State:   "VIC",
				Zip:     "3000",
				Country: "AU",
			},
		},
		"PayPal",
		249.85,
	)
	require.NoError(t, err)
	return o
}

func TestGormOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round-trips nested fields", func(t *testing.T) {
		repo := newTestRepo(t)
		o := makeOrder(t)
		require.NoError(t, repo.Save(ctx, o))

		got, err := repo.FindByID(ctx, o.OrderID)
		require.NoError(t, err)

		assert.Equal(t, o.OrderID, got.OrderID)
		assert.Equal(t, order.StatusPending, got.Status)
		assert.Equal(t, "Jesse Pinkman", got.Customer.Name)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "Factory Replica Kit", got.Items[0].Name)
		assert.Equal(t, "AusPost", got.Shipping.Provider)
		assert.Equal(t, "AU", got.Shipping.Address.Country)
		assert.InDelta(t, 264.70, got.Total, 0.001)
	})

	t.Run("duplicate id is a storage error", func(t *testing.T) {
		repo := newTestRepo(t)
		o := makeOrder(t)
		require.NoError(t, repo.Save(ctx, o))

		err := repo.Save(ctx, o)
		require.ErrorIs(t, err, shared.ErrStorage)
	})

	t.Run("find unknown id is not found", func(t *testing.T) {
		repo := newTestRepo(t)

		_, err := repo.FindByID(ctx, "GRX-DEADBEEF")
		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("find all returns newest first", func(t *testing.T) {
		repo := newTestRepo(t)

		older := makeOrder(t)
		older.CreatedAt = time.Now().UTC().Add(-time.Hour)
		require.NoError(t, repo.Save(ctx, older))

		newer := makeOrder(t)
		require.NoError(t, repo.Save(ctx, newer))

		orders, err := repo.FindAll(ctx)
		require.NoError(t, err)

		require.Len(t, orders, 2)
		assert.Equal(t, newer.OrderID, orders[0].OrderID)
		assert.Equal(t, older.OrderID, orders[1].OrderID)
	})

	t.Run("update status persists only the target order", func(t *testing.T) {
		repo := newTestRepo(t)
		a := makeOrder(t)
		b := makeOrder(t)
		require.NoError(t, repo.Save(ctx, a))
		require.NoError(t, repo.Save(ctx, b))

		updated, err := repo.UpdateStatus(ctx, a.OrderID, "shipped")
		require.NoError(t, err)
		assert.Equal(t, "shipped", updated.Status)

		reloaded, err := repo.FindByID(ctx, a.OrderID)
		require.NoError(t, err)
		assert.Equal(t, "shipped", reloaded.Status)

		untouched, err := repo.FindByID(ctx, b.OrderID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, untouched.Status)
	})

	t.Run("update status of unknown order is not found", func(t *testing.T) {
		repo := newTestRepo(t)

		_, err := repo.UpdateStatus(ctx, "GRX-MISSING1", "shipped")
		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("update with blank status is rejected", func(t *testing.T) {
		repo := newTestRepo(t)
		o := makeOrder(t)
		require.NoError(t, repo.Save(ctx, o))

		_, err := repo.UpdateStatus(ctx, o.OrderID, "   ")
		require.Error(t, err)

		reloaded, err := repo.FindByID(ctx, o.OrderID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, reloaded.Status)
	})
}
