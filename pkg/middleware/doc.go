// Package middleware provides net/http middleware for the vbridge preview
// server.
//
// This package includes:
//   - OpenTelemetry tracing, one server span per request
//   - Prometheus request metrics
//   - slog request logging
//
// # OpenTelemetry Middleware
//
// Spans are named after the matched chi route pattern, so
// /components/counter and /components/label share one span name. The span
// context is stored on the request context, which the host passes on to
// component lifecycle spans:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("vbridge-preview"),
//	))
//
// # Prometheus Metrics
//
// The Prometheus middleware collects:
//   - vbridge_http_requests_total: requests by route, method and status class
//   - vbridge_http_request_duration_seconds: request duration by route
//   - vbridge_http_requests_in_flight: requests being served
//
// Give each router its own registry and expose it with promhttp:
//
//	reg := prometheus.NewRegistry()
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
