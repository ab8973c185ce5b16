package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check is a named readiness dependency.
type Check struct {
	Name  string
	Check func(ctx context.Context) error
}

// RegisterProbes adds /health (liveness), /ready (every check passes within
// timeout) and /metrics.
func (r *Router) RegisterProbes(timeout time.Duration, checks ...Check) {
	r.HandleHandler("/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "healthy"}))
	}))

	r.HandleHandler("/ready", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()

		status := map[string]string{}
		ready := true
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				r.logger.Warn("readiness check failed", map[string]interface{}{"dependency": c.Name, "error": err})
				status[c.Name] = "unavailable"
				ready = false
				continue
			}
			status[c.Name] = "ok"
		}
		if !ready {
			writeJSON(w, http.StatusServiceUnavailable, Result[map[string]string]{
				Code: ResultError, Type: "error", Message: "not ready", Result: status,
			})
			return
		}
		writeJSON(w, http.StatusOK, Ok(status))
	}))

	r.HandleHandler("/metrics", promhttp.Handler())
}
