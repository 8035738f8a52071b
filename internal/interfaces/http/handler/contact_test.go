package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/infrastructure/notification"
)

type recordingSender struct {
	sent []notification.ContactMessage
	err  error
}

func (s *recordingSender) SendContactMessage(ctx context.Context, msg notification.ContactMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func contactRouter(sender ContactSender, configured bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewContactHandler(sender, configured, zap.NewNop()).RegisterRoutes(api)
	return r
}

const validContactBody = `{"name":"Jesse","email":"jesse@example.com","subject":"Custom kit","message":"Can you do a 2024 SX-F?"}`

func TestContactEndpoint(t *testing.T) {
	t.Run("relays message to the owner", func(t *testing.T) {
		sender := &recordingSender{}
		r := contactRouter(sender, true)

		w := postJSON(r, "/api/contact", validContactBody)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Jesse", sender.sent[0].Name)
		assert.Equal(t, "Custom kit", sender.sent[0].Subject)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		sender := &recordingSender{}
		r := contactRouter(sender, true)

		w := postJSON(r, "/api/contact", `{"name":"Jesse","email":"jesse@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name, email, and message are required.")
		assert.Empty(t, sender.sent)
	})

	t.Run("acks without sending when mail is unconfigured", func(t *testing.T) {
		sender := &recordingSender{}
		r := contactRouter(sender, false)

		w := postJSON(r, "/api/contact", validContactBody)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Empty(t, sender.sent)
	})

	t.Run("maps relay failure to 502", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("smtp down")}
		r := contactRouter(sender, true)

		w := postJSON(r, "/api/contact", validContactBody)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Message could not be sent. Please try again.")
	})
}
