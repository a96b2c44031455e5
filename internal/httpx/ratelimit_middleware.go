package httpx

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client address.
type RateLimitMiddleware struct {
	limiters map[string]*rateLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	cleanup  time.Duration
	done     chan struct{}
	stopOnce sync.Once

	// trustForwarded keys clients by X-Forwarded-For. Only safe behind a
	// proxy that overwrites the header.
	trustForwarded bool
}

func NewRateLimitMiddleware(rps float64, burst int, trustForwarded bool) *RateLimitMiddleware {
	return newRateLimitMiddleware(rps, burst, trustForwarded, 5*time.Minute)
}

func newRateLimitMiddleware(rps float64, burst int, trustForwarded bool, cleanup time.Duration) *RateLimitMiddleware {
	rl := &RateLimitMiddleware{
		limiters:       make(map[string]*rateLimiter),
		rate:           rate.Limit(rps),
		burst:          burst,
		cleanup:        cleanup,
		done:           make(chan struct{}),
		trustForwarded: trustForwarded,
	}

	go rl.cleanupLimiters()
	return rl
}

// Stop ends the background eviction loop.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimitMiddleware) cleanupLimiters() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.evict(time.Now())
		}
	}
}

func (rl *RateLimitMiddleware) evict(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, limiter := range rl.limiters {
		if now.Sub(limiter.lastSeen) > rl.cleanup {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = &rateLimiter{
			limiter:  rate.NewLimiter(rl.rate, rl.burst),
			lastSeen: time.Now(),
		}
		rl.limiters[key] = limiter
	} else {
		limiter.lastSeen = time.Now()
	}

	return limiter.limiter
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(clientKey(r, rl.trustForwarded)).Allow() {
			w.Header().Set("Retry-After", "1")
			JSONError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey is the remote host without port. With trustForwarded set, the
// first X-Forwarded-For entry wins.
func clientKey(r *http.Request, trustForwarded bool) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); trustForwarded && forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
