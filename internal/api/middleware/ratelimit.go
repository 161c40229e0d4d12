package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/gridroute/gridroute/internal/api/models"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	// RequestLimit is the number of requests allowed per window.
	RequestLimit int
	// WindowLength is the window duration.
	WindowLength time.Duration
}

// Default rate limit configurations.
var (
	// ComputeRateLimit applies to route computation (30 req/min): each
	// request fans out to the engine.
	ComputeRateLimit = RateLimitConfig{
		RequestLimit: 30,
		WindowLength: time.Minute,
	}

	// StandardRateLimit applies to everything else (120 req/min).
	StandardRateLimit = RateLimitConfig{
		RequestLimit: 120,
		WindowLength: time.Minute,
	}
)

// RateLimitByIP creates a rate limiter keyed by client IP.
func RateLimitByIP(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowLength,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// rateLimitExceeded writes an RFC7807 Problem when the limit is hit.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	problem := models.NewTooManyRequests(GetRequestID(r.Context()), "rate limit exceeded, try again later")
	problem.Instance = r.URL.Path

	// httprate does not expose the exact reset time; one window is a safe
	// upper bound.
	w.Header().Set("Retry-After", strconv.Itoa(60))

	problem.Write(w)
}
