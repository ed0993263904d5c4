package httpx

import (
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Rate limit profiles. Override with RATELIMIT_{AUTH,WRITE,READ}_{REQUESTS,WINDOW_SEC,BURST}.
var (
	// AuthLimit caps rejected Basic auth attempts per IP (brute force prevention).
	// Accepted credentials do not count against it.
	AuthLimit = RateLimitConfig{
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	// WriteLimit guards endpoints that create records.
	WriteLimit = RateLimitConfig{
		RequestsPerWindow: 60,
		Window:            time.Minute,
		Burst:             60,
	}

	// ReadLimit guards lookups and searches.
	ReadLimit = RateLimitConfig{
		RequestsPerWindow: 300,
		Window:            time.Minute,
		Burst:             300,
	}
)

func init() {
	AuthLimit = ParseRateLimitFromEnv("AUTH", AuthLimit)
	WriteLimit = ParseRateLimitFromEnv("WRITE", WriteLimit)
	ReadLimit = ParseRateLimitFromEnv("READ", ReadLimit)
}

// ParseRateLimitFromEnv reads rate limit configuration from environment variables.
// Environment variables follow the pattern: RATELIMIT_{prefix}_{field}
// For example: RATELIMIT_WRITE_REQUESTS, RATELIMIT_WRITE_WINDOW_SEC, RATELIMIT_WRITE_BURST
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		config.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		config.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		config.Burst = n
	}

	return config
}

func positiveEnvInt(key string) (int, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor is a function that extracts a unique key from the request
// for rate limiting purposes (e.g., IP address or authenticated username).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP address from the request.
// It handles X-Forwarded-For and X-Real-IP headers for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UsernameKeyExtractor keys on the principal set by BasicAuth.
func UsernameKeyExtractor(r *http.Request) string {
	return UsernameFromContext(r.Context())
}

// CompositeKeyExtractor combines multiple key extractors with a separator,
// skipping extractors that return an empty key.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// rateLimiter manages rate limiters for different keys
type rateLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)

	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose bucket is full again, at most once every
// five minutes.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware creates a rate limiting middleware with the given configuration.
// The keyExtractor determines how requests are grouped for rate limiting.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	ratePerSecond := float64(config.RequestsPerWindow) / config.Window.Seconds()

	rl := &rateLimiter{
		rate:        rate.Limit(ratePerSecond),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.getLimiter(key)
			if !limiter.Allow() {
				retryAfter := retryAfterSeconds(limiter)

				log.Warn("rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				writeRateLimited(w, config, retryAfter)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(limiter *rate.Limiter) int {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	return max(int(math.Ceil(delay.Seconds())), 1)
}

func writeRateLimited(w http.ResponseWriter, config RateLimitConfig, retryAfter int) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
	w.Header().Set("X-RateLimit-Window", config.Window.String())

	WriteError(w, http.StatusTooManyRequests,
		"rate_limit_exceeded", "Too many requests. Please try again later.")
}

// FailureLimiter throttles a key once it has used up its allowance of
// failures. Only Fail consumes tokens, so successful requests are never
// limited by it.
type FailureLimiter struct {
	config RateLimitConfig
	rl     *rateLimiter
}

// NewFailureLimiter creates a FailureLimiter allowing config.Burst failures
// per key, refilled at config.RequestsPerWindow per config.Window.
func NewFailureLimiter(config RateLimitConfig) *FailureLimiter {
	return &FailureLimiter{
		config: config,
		rl: &rateLimiter{
			rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
			burst:       config.Burst,
			lastCleanup: time.Now(),
		},
	}
}

// Blocked reports whether key has no failures left, and if so how many
// seconds until the next attempt is allowed.
func (f *FailureLimiter) Blocked(key string) (retryAfter int, blocked bool) {
	limiter := f.rl.getLimiter(key)
	if limiter.Tokens() >= 1 {
		return 0, false
	}
	return retryAfterSeconds(limiter), true
}

// Fail records one failure against key.
func (f *FailureLimiter) Fail(key string) {
	f.rl.getLimiter(key).Allow()
}

// RateLimitByIP creates a rate limiter that limits by IP address only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated username plus IP. Falls back to IP
// alone when the request is unauthenticated.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		UsernameKeyExtractor,
		IPKeyExtractor,
	))
}
