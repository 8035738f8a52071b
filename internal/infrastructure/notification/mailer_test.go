package notification

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/infrastructure/config"
)

func TestEmailTemplates(t *testing.T) {
	m, err := NewSMTPMailer(config.SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		From:       "orders@griffixracing.com",
		OwnerEmail: "owner@griffixracing.com",
	}, "https://paypal.me/griffix")
	require.NoError(t, err)

	o := testOrder(t)

	t.Run("owner email carries the full order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, m.ownerTmpl.Execute(&buf, newEmailData(o, m.paypalMeURL)))

		html := buf.String()
		assert.Contains(t, html, o.OrderID)
		assert.Contains(t, html, "Jesse")
		assert.Contains(t, html, "AusPost")
		assert.Contains(t, html, "$110.00")
	})

	t.Run("customer email links the payment url with the total", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, m.customerTmpl.Execute(&buf, newEmailData(o, m.paypalMeURL)))

		html := buf.String()
		assert.Contains(t, html, "https://paypal.me/griffix/110.00")
		assert.Contains(t, html, o.OrderID)
	})

	t.Run("payment link is omitted when unset", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, m.customerTmpl.Execute(&buf, newEmailData(o, "")))

		assert.NotContains(t, buf.String(), "paypal.me")
	})
}

func TestLoggingMailer(t *testing.T) {
	m := NewLoggingMailer(zap.NewNop())
	o := testOrder(t)

	assert.NoError(t, m.SendOwnerNotification(context.Background(), o))
	assert.NoError(t, m.SendCustomerConfirmation(context.Background(), o))
}
