package market

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

const defaultStocksURL = "https://www.alphavantage.co/query"

// StockPrice is one stock quote in the home report.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// StocksClient fetches intraday stock prices from Alpha Vantage.
type StocksClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewStocksClient() *StocksClient {
	return &StocksClient{
		httpClient: &http.Client{Timeout: lookupTimeout},
		baseURL:    defaultStocksURL,
	}
}

// NewStocksClientWithURL points the client at a different endpoint (tests).
func NewStocksClientWithURL(baseURL string) *StocksClient {
	c := NewStocksClient()
	c.baseURL = baseURL
	return c
}

// Prices fetches the latest 1-minute open price for each symbol. A failing
// or incomplete symbol is logged and skipped; the rest of the batch goes on.
func (c *StocksClient) Prices(ctx context.Context, apiKey string, symbols []string) []StockPrice {
	prices := make([]StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		price, ok := c.price(ctx, apiKey, symbol)
		if !ok {
			continue
		}
		prices = append(prices, StockPrice{Stock: symbol, Price: price})
	}
	return prices
}

func (c *StocksClient) price(ctx context.Context, apiKey, symbol string) (float64, bool) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_INTRADAY")
	q.Set("symbol", symbol)
	q.Set("interval", "1min")
	q.Set("apikey", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build stock request", "symbol", symbol, "error", err)
		return 0, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Stock price request failed", "symbol", symbol, "error", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "Stock price request returned non-200",
			"symbol", symbol, "status", resp.StatusCode)
		return 0, false
	}

	var payload struct {
		Series map[string]struct {
			Open string `json:"1. open"`
		} `json:"Time Series (1min)"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.ErrorContext(ctx, "Failed to decode stock response", "symbol", symbol, "error", err)
		return 0, false
	}
	if len(payload.Series) == 0 {
		slog.ErrorContext(ctx, "Stock response missing intraday series", "symbol", symbol)
		return 0, false
	}

	// Timestamps sort lexicographically; the greatest key is the latest bar.
	var latest string
	for ts := range payload.Series {
		if ts > latest {
			latest = ts
		}
	}
	open, err := strconv.ParseFloat(payload.Series[latest].Open, 64)
	if err != nil {
		slog.ErrorContext(ctx, "Unparsable open price", "symbol", symbol, "value", payload.Series[latest].Open)
		return 0, false
	}
	return math.Round(open*100) / 100, true
}
