// Package market fetches external reference data for reports: currency
// exchange rates and stock prices. Lookups degrade to an empty result on
// failure; a report with missing market data is better than no report.
package market

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

const (
	defaultRatesURL = "https://api.apilayer.com/exchangerates_data/latest"
	lookupTimeout   = 10 * time.Second
	ratesCacheTTL   = 5 * time.Minute
)

// Rate is one currency quote in the home report.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// RatesClient fetches the latest exchange rates from apilayer.
type RatesClient struct {
	httpClient *http.Client
	baseURL    string
	cache      *lruCache[[]Rate]
}

func NewRatesClient() *RatesClient {
	return &RatesClient{
		httpClient: &http.Client{Timeout: lookupTimeout},
		baseURL:    defaultRatesURL,
		cache:      newLRUCache[[]Rate](4, ratesCacheTTL),
	}
}

// NewRatesClientWithURL points the client at a different endpoint (tests).
func NewRatesClientWithURL(baseURL string) *RatesClient {
	c := NewRatesClient()
	c.baseURL = baseURL
	return c
}

// Rates returns the latest quotes sorted by currency code. A non-success
// response or decode failure is logged and yields an empty slice, never an
// error: per-lookup failures must not abort the report.
func (c *RatesClient) Rates(ctx context.Context, apiKey string) []Rate {
	if cached, ok := c.cache.Get("latest"); ok {
		return cached
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build rates request", "error", err)
		return []Rate{}
	}
	req.Header.Set("apikey", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Currency rates request failed", "error", err)
		return []Rate{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "Currency rates request returned non-200",
			"status", resp.StatusCode)
		return []Rate{}
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.ErrorContext(ctx, "Failed to decode rates response", "error", err)
		return []Rate{}
	}

	rates := make([]Rate, 0, len(payload.Rates))
	for currency, rate := range payload.Rates {
		rates = append(rates, Rate{Currency: currency, Rate: rate})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Currency < rates[j].Currency })

	c.cache.Set("latest", rates)
	slog.InfoContext(ctx, "Fetched currency rates", "count", len(rates))
	return rates
}
