package http

import (
	"net/http"
	"time"

	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accountsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	accountsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer *jwtx.Signer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &accountsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the session token signer has a secret loaded
		if signer == nil {
			checks.Signer = "error: no signing secret loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := accountsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
