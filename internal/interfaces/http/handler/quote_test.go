package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shippingapp "github.com/griffix/backend/internal/application/shipping"
	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/domain/shipping"
)

type stubRates struct {
	quotes []shipping.Quote
	err    error
}

func (s *stubRates) Rates(ctx context.Context, to shipping.Address, parcel shipping.Parcel) ([]shipping.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

func quoteRouter(rates shippingapp.RateProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewQuoteHandler(shippingapp.NewQuoteService(rates)).RegisterRoutes(api)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validQuoteBody = `{
	"destination": {"name":"Jesse","street1":"1 Pit Lane","city":"Melbourne","state":"VIC","zip":"3000","country":"AU"},
	"items": [{"category":"graphic-kit","quantity":1}]
}`

func TestQuoteEndpoint(t *testing.T) {
	t.Run("returns quotes with fixed-point amounts", func(t *testing.T) {
		r := quoteRouter(&stubRates{quotes: []shipping.Quote{
			{RateID: "rate_a", Provider: "AusPost", ServiceLevel: "Express", Amount: decimal.NewFromFloat(11.28), Currency: "AUD"},
			{RateID: "rate_b", Provider: "TNT", ServiceLevel: "Road", Amount: decimal.NewFromFloat(22), Currency: "AUD"},
		}})

		w := postJSON(r, "/api/quote", validQuoteBody)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Quotes []quoteDTO `json:"quotes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Quotes, 2)
		assert.Equal(t, "11.28", resp.Quotes[0].Amount)
		assert.Equal(t, "22.00", resp.Quotes[1].Amount)
		assert.Equal(t, "AusPost", resp.Quotes[0].Provider)
	})

	t.Run("missing destination is 400", func(t *testing.T) {
		r := quoteRouter(&stubRates{})

		w := postJSON(r, "/api/quote", `{"items":[{"category":"accessory","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION")
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		r := quoteRouter(&stubRates{})

		w := postJSON(r, "/api/quote", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing credential is 503", func(t *testing.T) {
		r := quoteRouter(&stubRates{err: shared.ErrShippingNotConfigured})

		w := postJSON(r, "/api/quote", validQuoteBody)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "CONFIG")
	})

	t.Run("upstream failure is 502", func(t *testing.T) {
		r := quoteRouter(&stubRates{err: shared.ErrShippingUnavailable})

		w := postJSON(r, "/api/quote", validQuoteBody)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "UPSTREAM")
	})
}
