package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/griffix/backend/internal/application/catalog"
)

// CatalogHandler serves the storefront product and gallery reads
type CatalogHandler struct {
	BaseHandler
	catalog *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Products handles GET /products
func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, gin.H{"products": products})
}

// Product handles GET /products/:id
func (h *CatalogHandler) Product(c *gin.Context) {
	product, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, gin.H{"product": product})
}

// Gallery handles GET /gallery
func (h *CatalogHandler) Gallery(c *gin.Context) {
	items, err := h.catalog.Gallery(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, gin.H{"gallery": items})
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.Products)
	rg.GET("/products/:id", h.Product)
	rg.GET("/gallery", h.Gallery)
}
