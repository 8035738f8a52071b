package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/infrastructure/notification"
	"github.com/griffix/backend/internal/interfaces/http/dto"
)

// ContactSender relays a contact-form message to the shop owner.
type ContactSender interface {
	SendContactMessage(ctx context.Context, msg notification.ContactMessage) error
}

// ContactHandler handles storefront contact-form submissions
type ContactHandler struct {
	BaseHandler
	sender        ContactSender
	configured    bool
	logger        *zap.Logger
	submitLimiter gin.HandlerFunc
}

// ContactOption configures a ContactHandler
type ContactOption func(*ContactHandler)

// WithSubmitLimiter rate-limits the contact route with the given middleware
func WithSubmitLimiter(mw gin.HandlerFunc) ContactOption {
	return func(h *ContactHandler) {
		h.submitLimiter = mw
	}
}

// NewContactHandler creates a new ContactHandler. When configured is
// false the handler logs submissions and acks instead of emailing,
// so the form works before SMTP is set up.
func NewContactHandler(sender ContactSender, configured bool, logger *zap.Logger, opts ...ContactOption) *ContactHandler {
	h := &ContactHandler{sender: sender, configured: configured, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg notification.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil || msg.Name == "" || msg.Email == "" || msg.Message == "" {
		h.BadRequest(c, "Name, email, and message are required.")
		return
	}

	if !h.configured {
		h.logger.Info("contact form received",
			zap.String("name", msg.Name),
			zap.String("email", msg.Email),
			zap.String("subject", msg.Subject))
		h.Success(c, gin.H{"success": true})
		return
	}

	if err := h.sender.SendContactMessage(c.Request.Context(), msg); err != nil {
		h.logger.Error("contact relay failed", zap.Error(err))
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeUpstream), dto.ErrCodeUpstream,
			"Message could not be sent. Please try again.")
		return
	}

	h.Success(c, gin.H{"success": true})
}

// RegisterRoutes registers the contact route
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	if h.submitLimiter != nil {
		rg.POST("/contact", h.submitLimiter, h.Submit)
	} else {
		rg.POST("/contact", h.Submit)
	}
}
