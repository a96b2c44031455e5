// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	LogLevel           string
	StaticDir          string
	CORSAllowedOrigins []string
	EnableHSTS         bool
	MaxBodyBytes       int64
	RateLimitRPS       float64
	RateLimitBurst     int
	TrustProxyHeaders  bool
	ShutdownTimeout    time.Duration
}

// LoadEnvFiles reads .env and .env.local without overriding the real environment.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration, reporting every invalid variable at once.
func Load() (Config, error) {
	cfg := Config{
		Addr:               getEnv("APP_ADDR", ":3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StaticDir:          getEnv("STATIC_DIR", "public"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var errs []error
	var err error
	if cfg.EnableHSTS, err = strconv.ParseBool(getEnv("ENABLE_HSTS", "false")); err != nil {
		errs = append(errs, fmt.Errorf("ENABLE_HSTS: %w", err))
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES: must be a positive integer"))
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil || cfg.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS: must be a non-negative number"))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil || cfg.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST: must be a positive integer"))
	}
	if cfg.TrustProxyHeaders, err = strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false")); err != nil {
		errs = append(errs, fmt.Errorf("TRUST_PROXY_HEADERS: %w", err))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
