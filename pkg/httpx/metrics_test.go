package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := httpx.NewMetrics(registry, "test")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /clients/{clientId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware()(mux)

	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients/c1", nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, 2.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues(http.MethodGet, "GET /clients/{clientId}", "404"),
	))
	require.Equal(t, 1.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"),
	))
	require.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "test_http_requests_total")
}
