package api

import (
	"net/http"
	"sync"
	"time"

	"finlens/internal/report"
)

// rateLimiter tracks request counts per client IP over a fixed one-minute
// window. Stale clients are evicted lazily on each Allow call once the map
// grows past cleanupThreshold, so no background goroutine is needed.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow

	requestsPerMinute int
}

type clientWindow struct {
	windowStart time.Time
	requests    int
}

const (
	requestsPerMinute = 120
	cleanupThreshold  = 1024
)

func newRateLimiter(requestsPerMinute int) *rateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &rateLimiter{
		clients:           make(map[string]*clientWindow),
		requestsPerMinute: requestsPerMinute,
	}
}

func (rl *rateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if len(rl.clients) > cleanupThreshold {
		rl.evictStale(now)
	}

	client, ok := rl.clients[clientIP]
	if !ok || now.Sub(client.windowStart) > time.Minute {
		rl.clients[clientIP] = &clientWindow{windowStart: now, requests: 1}
		return true
	}

	client.requests++
	return client.requests <= rl.requestsPerMinute
}

func (rl *rateLimiter) evictStale(now time.Time) {
	cutoff := now.Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.windowStart.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// middleware rejects over-limit clients with a JSON error payload. It expects
// chi's RealIP middleware to have normalized r.RemoteAddr already.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(r.RemoteAddr) {
			w.Header().Set("Retry-After", "60")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = report.Encode(w, report.ErrorPayload{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureHeaders sets the response headers that make sense for a JSON-only API.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
