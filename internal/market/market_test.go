package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRatesSortedAndCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if got := r.Header.Get("apikey"); got != "key-1" {
			t.Errorf("apikey header = %q", got)
		}
		w.Write([]byte(`{"rates":{"USD":1.0,"EUR":0.9,"GBP":0.8}}`))
	}))
	defer srv.Close()

	client := NewRatesClientWithURL(srv.URL)
	ctx := context.Background()

	rates := client.Rates(ctx, "key-1")
	if len(rates) != 3 {
		t.Fatalf("got %d rates, want 3", len(rates))
	}
	want := []string{"EUR", "GBP", "USD"}
	for i, w := range want {
		if rates[i].Currency != w {
			t.Errorf("position %d = %s, want %s", i, rates[i].Currency, w)
		}
	}

	// Second call within the TTL hits the cache, not the server.
	client.Rates(ctx, "key-1")
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("server hit %d times, want 1", hits)
	}
}

func TestRatesNon200YieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	rates := NewRatesClientWithURL(srv.URL).Rates(context.Background(), "bad")
	if rates == nil || len(rates) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", rates)
	}
}

func TestStockPricesSkipsBadSymbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			w.Write([]byte(`{"Time Series (1min)":{
				"2023-01-01 15:59:00":{"1. open":"150.1234"},
				"2023-01-01 16:00:00":{"1. open":"151.5678"}}}`))
		case "NOPE":
			w.Write([]byte(`{"Note":"rate limited"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewStocksClientWithURL(srv.URL)
	prices := client.Prices(context.Background(), "key", []string{"AAPL", "NOPE", "FAIL"})
	if len(prices) != 1 {
		t.Fatalf("got %d prices, want 1: %v", len(prices), prices)
	}
	if prices[0].Stock != "AAPL" || prices[0].Price != 151.57 {
		t.Fatalf("got %+v, want AAPL 151.57 (latest bar, 2dp)", prices[0])
	}
}

func TestLRUCacheTTLAndEviction(t *testing.T) {
	c := newLRUCache[int](2, 50*time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3) // evicts a

	if _, ok := c.Get("a"); ok {
		t.Fatalf("a should have been evicted")
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Fatalf("b = %d,%v", v, ok)
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have expired")
	}
}
