package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")

		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")

		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	extractor := httpx.CompositeKeyExtractor(":",
		httpx.UsernameKeyExtractor,
		httpx.IPKeyExtractor,
	)

	t.Run("combines username and ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUsername, "admin"))

		require.Equal(t, "admin:192.168.1.1", extractor(req))
	})

	t.Run("skips empty values", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		require.Equal(t, "192.168.1.1", extractor(req))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests under limit", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Second, Burst: 5}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for i := range 5 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			rec := httptest.NewRecorder()

			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			limited.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		send := func(addr string) int {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			return rec.Code
		}

		require.Equal(t, http.StatusOK, send("192.168.1.1:1"))
		require.Equal(t, http.StatusTooManyRequests, send("192.168.1.1:1"))
		require.Equal(t, http.StatusOK, send("192.168.1.2:1"))
	})

	t.Run("empty key is let through", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		limited := httpx.RateLimitMiddleware(config, httpx.UsernameKeyExtractor)(okHandler())

		for range 3 {
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("uses defaults when unset", func(t *testing.T) {
		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("UNSET_PROFILE", defaults))
	})

	t.Run("applies overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "100")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "50")

		got := httpx.ParseRateLimitFromEnv("TEST", defaults)
		require.Equal(t, 100, got.RequestsPerWindow)
		require.Equal(t, 30*time.Second, got.Window)
		require.Equal(t, 50, got.Burst)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		t.Setenv("RATELIMIT_BAD_REQUESTS", "lots")
		t.Setenv("RATELIMIT_BAD_BURST", "-4")

		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("BAD", defaults))
	})
}
