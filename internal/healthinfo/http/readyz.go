package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the state of the database
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	healthsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	healthsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &healthsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		// The probe is public, so the cause is logged rather than returned.
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness: database ping failed", "error", err)
			checks.Database = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, healthsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
