package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/griffix/backend/internal/application/order"
	"github.com/griffix/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout submissions and admin order management
type OrderHandler struct {
	BaseHandler
	orders      *orderapp.Service
	adminSecret string
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *orderapp.Service, adminSecret string) *OrderHandler {
	return &OrderHandler{orders: orders, adminSecret: adminSecret}
}

// Submit handles POST /orders
func (h *OrderHandler) Submit(c *gin.Context) {
	var req orderapp.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required order fields.")
		return
	}

	resp, err := h.orders.Submit(c.Request.Context(), req)
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, gin.H{"order": o})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /orders/:id
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "status is required")
		return
	}

	updated, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, gin.H{"success": true, "order": updated})
}

// RegisterRoutes registers order routes. Listing, fetching and status
// changes are admin only; submission is public.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Submit)

	admin := rg.Group("/orders")
	admin.Use(middleware.AdminAuth(h.adminSecret))
	admin.GET("", h.List)
	admin.GET("/:id", h.Get)
	admin.PATCH("/:id", h.UpdateStatus)
}
