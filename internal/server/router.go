// Package server assembles the catalog HTTP handler.
package server

import (
	"net/http"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the catalog API, health, metrics and static routes behind
// the middleware chain. The returned func releases background resources.
func NewRouter(cfg config.Config, repo book.Repository, reg prometheus.Registerer, gatherer prometheus.Gatherer) (http.Handler, func()) {
	bookHandler := book.NewHTTPHandler(book.NewService(repo))

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	bookHandler.Register(router)
	router.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))

	middlewares := []httpx.Middleware{
		httpx.RecoveryMiddleware,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.NewMetrics(reg).Middleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
	}

	cleanup := func() {}
	if cfg.RateLimitRPS > 0 {
		rl := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxyHeaders)
		middlewares = append(middlewares, rl.Middleware)
		cleanup = rl.Stop
	}
	middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))

	return httpx.Chain(router, middlewares...), cleanup
}
