package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	healthhttp "github.com/aussiebroadwan/healthinfo/internal/healthinfo/http"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

func TestStoreFailureDoesNotLeakCause(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM clients").WillReturnError(errors.New("secret table layout leaked"))

	env := &testEnv{router: newRouter(t, sqlite.NewStoreFromDB(db))}
	rec := env.do(t, http.MethodGet, "/clients", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret table layout")

	resp := decodeError(t, rec)
	require.Equal(t, healthsdk.ErrorCodeServerError, resp.Error)
	require.Equal(t, "Failed to list clients", resp.ErrorDescription)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPanicRecovered(t *testing.T) {
	r := healthhttp.NewRouter("test", nil, nil, nil, slogx.Discard())
	r.Mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"server_error","error_description":"An internal error occurred"}`, rec.Body.String())

	// The process keeps serving.
	r.Mux.HandleFunc("GET /ok", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteText(w, http.StatusOK, "ok")
	})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPanicCountedInMetrics(t *testing.T) {
	metrics := httpx.NewMetrics(prometheus.NewRegistry(), "healthinfo")
	r := healthhttp.NewRouter("test", nil, nil, metrics, slogx.Discard())
	r.Mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Equal(t, 1.0, testutil.ToFloat64(
		metrics.RequestsTotal.WithLabelValues(http.MethodGet, "GET /boom", "500"),
	))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.InFlight))
}
