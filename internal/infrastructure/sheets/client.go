package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/catalog"
	"github.com/griffix/backend/internal/domain/shared"
	"github.com/griffix/backend/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the sheets API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client reads catalog tabs from the Google Sheets values API.
type Client struct {
	cfg        config.CatalogConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a sheets client from the catalog configuration.
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// Rows fetches a tab and maps every data row onto the trimmed header
// row. Cells beyond the header width are dropped, short rows are
// padded with empty strings.
func (c *Client) Rows(ctx context.Context, tab string) ([]catalog.Row, error) {
	if c.cfg.SheetID == "" || c.cfg.APIKey == "" {
		return nil, shared.NewDomainError("CONFIG", "Catalog source is not configured")
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.cfg.BaseURL,
		url.PathEscape(c.cfg.SheetID),
		url.PathEscape(tab),
		url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("sheet fetch failed", zap.String("tab", tab), zap.Error(err))
		return nil, shared.ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, shared.ErrCatalogUnavailable
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("sheet api returned error",
			zap.String("tab", tab),
			zap.Int("status", resp.StatusCode))
		return nil, shared.WrapSource(fmt.Sprintf("Sheets error %d for tab %q", resp.StatusCode, tab))
	}

	var values valuesResponse
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, shared.WrapSource("Sheets returned an unreadable response")
	}

	return mapRows(values.Values), nil
}

func mapRows(values [][]string) []catalog.Row {
	if len(values) == 0 {
		return []catalog.Row{}
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]catalog.Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(catalog.Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell string
			if i < len(raw) {
				cell = strings.TrimSpace(raw[i])
			}
			row[header] = cell
		}
		rows = append(rows, row)
	}
	return rows
}
