package shippo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/domain/shipping"
	"github.com/griffix/backend/internal/infrastructure/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.ShippingConfig{
		APIKey:      "shippo_test_key",
		BaseURL:     baseURL,
		Markup:      1.10,
		FromName:    "Griffix Racing",
		FromCountry: "AU",
	}, zap.NewNop())
}

func testDestination() shipping.Address {
	return shipping.Address{
		Name:    "Jesse",
		Street1: "1 Pit Lane",
		City:    "Melbourne",
		State:   "VIC",
		Zip:     "3000",
		Country: "AU",
	}
}

func TestRates(t *testing.T) {
	t.Run("applies markup and sorts cheapest first", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/shipments/", r.URL.Path)
			assert.Equal(t, "ShippoToken shippo_test_key", r.Header.Get("Authorization"))

			var req shipmentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.False(t, req.Async)
			require.Len(t, req.Parcels, 1)
			assert.Equal(t, "kg", req.Parcels[0].MassUnit)
			assert.Equal(t, "cm", req.Parcels[0].DistanceUnit)

			json.NewEncoder(w).Encode(map[string]any{
				"rates": []map[string]any{
					{
						"object_id":      "rate_b",
						"object_status":  "SUCCESS",
						"provider":       "TNT",
						"servicelevel":   map[string]string{"name": "Road Express"},
						"amount_local":   "20.00",
						"currency_local": "AUD",
					},
					{
						"object_id":      "rate_a",
						"object_status":  "SUCCESS",
						"provider":       "AusPost",
						"servicelevel":   map[string]string{"name": "Parcel Post"},
						"duration_terms": "2-5 business days",
						"amount_local":   "10.25",
						"currency_local": "AUD",
					},
					{
						"object_id":     "rate_c",
						"object_status": "ERROR",
						"provider":      "DHL",
						"amount_local":  "1.00",
					},
				},
			})
		}))
		defer server.Close()

		quotes, err := testClient(server.URL).Rates(context.Background(), testDestination(), shipping.DeriveParcel(nil))
		require.NoError(t, err)

		require.Len(t, quotes, 2, "non-SUCCESS rates must be dropped")
		assert.Equal(t, "rate_a", quotes[0].RateID)
		assert.Equal(t, "11.28", quotes[0].Amount.StringFixed(2), "10.25 x 1.10 rounds half up")
		assert.Equal(t, "22.00", quotes[1].Amount.StringFixed(2))
		assert.Equal(t, "AUD", quotes[0].Currency)
		assert.Equal(t, "Parcel Post", quotes[0].ServiceLevel)
	})

	t.Run("falls back to amount and currency when local fields absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"rates": []map[string]any{{
					"object_id":         "rate_x",
					"object_status":     "SUCCESS",
					"provider":          "USPS",
					"servicelevel_name": "Priority",
					"amount":            "30.00",
					"currency":          "USD",
				}},
			})
		}))
		defer server.Close()

		quotes, err := testClient(server.URL).Rates(context.Background(), testDestination(), shipping.DeriveParcel(nil))
		require.NoError(t, err)

		require.Len(t, quotes, 1)
		assert.Equal(t, "USD", quotes[0].Currency)
		assert.Equal(t, "Priority", quotes[0].ServiceLevel)
		assert.True(t, quotes[0].Amount.Equal(decimal.NewFromFloat(33.00)))
	})

	t.Run("upstream failure surfaces status and body text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("carrier backend down"))
		}))
		defer server.Close()

		_, err := testClient(server.URL).Rates(context.Background(), testDestination(), shipping.DeriveParcel(nil))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "UPSTREAM", domainErr.Code)
		assert.Contains(t, domainErr.Message, "502")
		assert.Contains(t, domainErr.Message, "carrier backend down")
	})

	t.Run("missing api key is a config error", func(t *testing.T) {
		client := NewClient(config.ShippingConfig{Markup: 1.10}, zap.NewNop())

		_, err := client.Rates(context.Background(), testDestination(), shipping.DeriveParcel(nil))
		require.ErrorIs(t, err, shared.ErrShippingNotConfigured)
	})

	t.Run("unreachable host is an upstream error", func(t *testing.T) {
		client := testClient("http://127.0.0.1:1")

		_, err := client.Rates(context.Background(), testDestination(), shipping.DeriveParcel(nil))
		require.ErrorIs(t, err, shared.ErrShippingUnavailable)
	})
}
