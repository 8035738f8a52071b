package shippo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/domain/shipping"
	"github.com/griffix/backend/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the rate API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client fetches live shipping rates from the Shippo REST API and
// applies the shop's markup before handing them to the application.
type Client struct {
	cfg        config.ShippingConfig
	markup     decimal.Decimal
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a rate client from the shipping configuration.
func NewClient(cfg config.ShippingConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		markup:     decimal.NewFromFloat(cfg.Markup),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// shipmentRequest is the POST /shipments/ payload. Shippo expects all
// numeric parcel fields as strings.
type shipmentRequest struct {
	AddressFrom addressPayload  `json:"address_from"`
	AddressTo   addressPayload  `json:"address_to"`
	Parcels     []parcelPayload `json:"parcels"`
	Async       bool            `json:"async"`
}

type addressPayload struct {
	Name    string `json:"name,omitempty"`
	Street1 string `json:"street1,omitempty"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type parcelPayload struct {
	MassValue    string `json:"mass_value"`
	MassUnit     string `json:"mass_unit"`
	Length       string `json:"length"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	DistanceUnit string `json:"distance_unit"`
}

type shipmentResponse struct {
	Rates []rateEntry `json:"rates"`
}

type rateEntry struct {
	ObjectID     string `json:"object_id"`
	ObjectStatus string `json:"object_status"`
	Provider     string `json:"provider"`
	ServiceLevel struct {
		Name string `json:"name"`
	} `json:"servicelevel"`
	ServiceLevelName string `json:"servicelevel_name"`
	DurationTerms    string `json:"duration_terms"`
	Amount           string `json:"amount"`
	AmountLocal      string `json:"amount_local"`
	Currency         string `json:"currency"`
	CurrencyLocal    string `json:"currency_local"`
}

// Rates creates a synchronous shipment for the destination and parcel
// and returns the usable rates, marked up and sorted cheapest first.
func (c *Client) Rates(ctx context.Context, to shipping.Address, parcel shipping.Parcel) ([]shipping.Quote, error) {
	if c.cfg.APIKey == "" {
		return nil, shared.ErrShippingNotConfigured
	}

	reqBody := shipmentRequest{
		AddressFrom: addressPayload{
			Name:    c.cfg.FromName,
			Street1: c.cfg.FromStreet1,
			City:    c.cfg.FromCity,
			State:   c.cfg.FromState,
			Zip:     c.cfg.FromZip,
			Country: c.cfg.FromCountry,
			Phone:   c.cfg.FromPhone,
		},
		AddressTo: addressPayload{
			Name:    to.Name,
			Street1: to.Street1,
			Street2: to.Street2,
			City:    to.City,
			State:   to.State,
			Zip:     to.Zip,
			Country: to.Country,
			Phone:   to.Phone,
			Email:   to.Email,
		},
		Parcels: []parcelPayload{{
			MassValue:    parcel.Mass.StringFixed(2),
			MassUnit:     "kg",
			Length:       parcel.Length.String(),
			Width:        parcel.Width.String(),
			Height:       parcel.Height.String(),
			DistanceUnit: "cm",
		}},
		Async: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal shipment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/shipments/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build shipment request: %w", err)
	}
	req.Header.Set("Authorization", "ShippoToken "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("rate request failed", zap.Error(err))
		return nil, shared.ErrShippingUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, shared.ErrShippingUnavailable
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("rate api returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, shared.WrapUpstream(fmt.Sprintf("Shippo error %d: %s", resp.StatusCode, string(body)))
	}

	var shipment shipmentResponse
	if err := json.Unmarshal(body, &shipment); err != nil {
		return nil, shared.WrapUpstream("Shippo returned an unreadable response")
	}

	quotes := make([]shipping.Quote, 0, len(shipment.Rates))
	for _, r := range shipment.Rates {
		if r.ObjectStatus != "SUCCESS" {
			continue
		}
		amount, err := decimal.NewFromString(firstNonEmpty(r.AmountLocal, r.Amount))
		if err != nil {
			continue
		}
		quotes = append(quotes, shipping.Quote{
			RateID:        r.ObjectID,
			Provider:      r.Provider,
			ServiceLevel:  firstNonEmpty(r.ServiceLevel.Name, r.ServiceLevelName),
			DurationTerms: r.DurationTerms,
			Amount:        amount.Mul(c.markup).Round(2),
			Currency:      firstNonEmpty(r.CurrencyLocal, r.Currency),
		})
	}

	shipping.SortQuotes(quotes)
	return quotes, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
