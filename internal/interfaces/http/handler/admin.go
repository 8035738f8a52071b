package handler

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/griffix/backend/internal/interfaces/http/middleware"
)

// loginDelay is applied to every failed login so wrong passwords are
// indistinguishable in timing.
const loginDelay = 500 * time.Millisecond

// AdminHandler handles admin login and token verification
type AdminHandler struct {
	BaseHandler
	password     string
	secret       string
	loginLimiter gin.HandlerFunc
}

// AdminOption configures an AdminHandler
type AdminOption func(*AdminHandler)

// WithLoginLimiter rate-limits the login route with the given middleware
func WithLoginLimiter(mw gin.HandlerFunc) AdminOption {
	return func(h *AdminHandler) {
		h.loginLimiter = mw
	}
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(password, secret string, opts ...AdminOption) *AdminHandler {
	h := &AdminHandler{password: password, secret: secret}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login, exchanging the admin password for
// the shared admin token
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		h.BadRequest(c, "Password required.")
		return
	}

	if h.password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		time.Sleep(loginDelay)
		h.Unauthorized(c, "Incorrect password.")
		return
	}

	h.Success(c, gin.H{"success": true, "token": h.secret})
}

// Verify handles GET /admin/verify
func (h *AdminHandler) Verify(c *gin.Context) {
	token := c.GetHeader(middleware.AdminTokenHeader)
	if h.secret == "" || token == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		c.JSON(401, gin.H{"valid": false})
		return
	}
	h.Success(c, gin.H{"valid": true})
}

// RegisterRoutes registers admin auth routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	if h.loginLimiter != nil {
		admin.POST("/login", h.loginLimiter, h.Login)
	} else {
		admin.POST("/login", h.Login)
	}
	admin.GET("/verify", h.Verify)
}
