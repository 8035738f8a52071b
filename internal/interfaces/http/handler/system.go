package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the order store is reachable.
type Pinger interface {
	Ping() error
}

// SystemHandler serves health and public configuration endpoints
type SystemHandler struct {
	BaseHandler
	db          Pinger
	paypalMeURL string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, paypalMeURL string) *SystemHandler {
	return &SystemHandler{db: db, paypalMeURL: paypalMeURL}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			c.JSON(503, gin.H{"ok": false})
			return
		}
	}
	h.Success(c, gin.H{"ok": true, "ts": time.Now().UnixMilli()})
}

// Config handles GET /config, exposing only non-sensitive values the
// storefront needs
func (h *SystemHandler) Config(c *gin.Context) {
	h.Success(c, gin.H{"paypalMeUrl": h.paypalMeURL})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/config", h.Config)
}
