package controller

import (
	"context"
	"net/http"
	"outreach/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// HealthPath is where HealthHandler is mounted.
const HealthPath = "/healthz"

const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers 200 when every pinger is reachable and 503 otherwise.
func HealthHandler(pingers ...Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		for _, p := range pingers {
			if err := p.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"code":"UNAVAILABLE","message":"dependency unavailable"}`))

				return
			}
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}
