package handler

import (
	"github.com/gin-gonic/gin"

	shippingapp "github.com/griffix/backend/internal/application/shipping"
	"github.com/griffix/backend/internal/domain/shipping"
)

// QuoteHandler handles shipping quote requests
type QuoteHandler struct {
	BaseHandler
	quotes *shippingapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quotes *shippingapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// quoteDTO is the wire shape of one shipping quote. Amounts are
// fixed-point strings, never floats.
type quoteDTO struct {
	RateID        string `json:"rateId"`
	Provider      string `json:"provider"`
	ServiceLevel  string `json:"servicelevel"`
	DurationTerms string `json:"durationTerms,omitempty"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

func toQuoteDTOs(quotes []shipping.Quote) []quoteDTO {
	out := make([]quoteDTO, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, quoteDTO{
			RateID:        q.RateID,
			Provider:      q.Provider,
			ServiceLevel:  q.ServiceLevel,
			DurationTerms: q.DurationTerms,
			Amount:        q.Amount.StringFixed(2),
			Currency:      q.Currency,
		})
	}
	return out
}

// Quote handles POST /quote
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req shippingapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "destination and items are required")
		return
	}

	quotes, err := h.quotes.Quote(c.Request.Context(), req)
	if err != nil {
		h.DomainError(c, err)
		return
	}

	h.Success(c, gin.H{"quotes": toQuoteDTOs(quotes)})
}

// RegisterRoutes registers the quote route
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quote", h.Quote)
}
