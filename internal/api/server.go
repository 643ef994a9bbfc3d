// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the outreach service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"outreach/internal/api/handler/v1handler"
	"outreach/internal/api/specs/v1specs"
	"outreach/internal/config"
	"outreach/pkg/controller"
	"outreach/pkg/metrics"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults, except RequestTimeout
// which disables the request timeout.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits JSON request bodies of the v1 API.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins restricts browser origins. Empty allows any origin.
	CORSOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider receives the HTTP instruments. When nil a provider
	// exporting to the default prometheus registry is created.
	MeterProvider metric.MeterProvider
	// Health lists the dependencies checked by the health endpoint.
	Health []controller.Pinger
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) and the health endpoint
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// It also wraps the mux with recover, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// liveness and database reachability
	mux.Handle("GET "+controller.HealthPath, controller.HealthHandler(deps.Health...))

	// otel
	mp := deps.MeterProvider
	if mp == nil {
		var err error
		if mp, err = metrics.NewMeterProvider(prometheus.DefaultRegisterer); err != nil {
			return nil, err
		}
	}

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Outreach Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	h := v1handler.New(deps.Deps)
	v1Srv, err := v1specs.NewServer(h,
		secHandler,
		v1specs.WithMeterProvider(mp),
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithNotFound(h.NotFound),
		v1specs.WithMethodNotAllowed(h.MethodNotAllowed),
		v1specs.WithErrorHandler(h.HandleError))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	var v1 http.Handler = v1Srv
	if opts.MaxBodyBytes > 0 {
		v1 = http.MaxBytesHandler(v1, opts.MaxBodyBytes)
	}
	mux.Handle("/v1/", v1)

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	handler := controller.WithRecover(mux)

	// cors
	handler = controller.WithCORS(handler, opts.CORSOrigins...)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
