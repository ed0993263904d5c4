package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type fixedCreds struct{ user, pass string }

func (f fixedCreds) Verify(u, p string) bool { return u == f.user && p == f.pass }

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestBasicAuth(t *testing.T) {
	var seenUser string
	h := httpx.BasicAuth("Test Realm", fixedCreds{"admin", "secret"}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenUser = httpx.UsernameFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
		t.Helper()
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("missing credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, `Basic realm="Test Realm", charset="UTF-8"`, rec.Header().Get("WWW-Authenticate"))
		body := decode(t, rec)
		require.Equal(t, "unauthorized", body["error"])
		require.Equal(t, "No credentials provided", body["error_description"])
	})

	t.Run("non-basic scheme counts as missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "No credentials provided", decode(t, rec)["error_description"])
	})

	t.Run("wrong credentials are not echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("mallory", "guess123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
		require.Equal(t, "Credentials rejected", decode(t, rec)["error_description"])
		require.False(t, strings.Contains(rec.Body.String(), "mallory"))
		require.False(t, strings.Contains(rec.Body.String(), "guess123"))
	})

	t.Run("valid credentials pass through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("admin", "secret")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "admin", seenUser)
	})
}

type countingCreds struct {
	fixedCreds
	calls int
}

func (c *countingCreds) Verify(u, p string) bool {
	c.calls++
	return c.fixedCreds.Verify(u, p)
}

func TestBasicAuth_FailureLimit(t *testing.T) {
	creds := &countingCreds{fixedCreds: fixedCreds{"admin", "secret"}}
	failures := httpx.NewFailureLimiter(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Hour,
		Burst:             3,
	})
	h := httpx.BasicAuth("Test Realm", creds, failures)(okHandler())

	send := func(ip, user, pass string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":4000"
		req.SetBasicAuth(user, pass)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// Successful logins never consume the allowance.
	for range 5 {
		require.Equal(t, http.StatusOK, send("10.0.0.1", "admin", "secret").Code)
	}

	for i := range 3 {
		require.Equal(t, http.StatusUnauthorized, send("10.0.0.1", "admin", "guess").Code, "attempt %d", i+1)
	}

	rec := send("10.0.0.1", "admin", "guess")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A throttled IP is refused before its credentials are checked.
	calls := creds.calls
	require.Equal(t, http.StatusTooManyRequests, send("10.0.0.1", "admin", "secret").Code)
	require.Equal(t, calls, creds.calls)

	require.Equal(t, http.StatusOK, send("10.0.0.2", "admin", "secret").Code)
}

func TestRecover(t *testing.T) {
	h := httpx.Recover()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t,
		`{"error":"server_error","error_description":"An internal error occurred"}`,
		rec.Body.String(),
	)
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteText(rec, http.StatusOK, "hello")

	require.Equal(t, "hello", rec.Body.String())
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestNoStore(t *testing.T) {
	h := httpx.NoStore()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "no-cache", rec.Header().Get("Pragma"))
}
