// Package middleware wraps the dispatch of live preview events.
//
// A session turns every client event into an *Event and runs it through a
// chain of Middleware before the Go handler registered for the element is
// invoked. This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//   - Logging middleware
//
// # OpenTelemetry Middleware
//
// One span per event, named after the event action ("cosmos.select"), with
// the preview, session, hydration id and control as attributes:
//
//	cfg.WithEventMiddleware(
//	    middleware.OpenTelemetry(middleware.WithTracerName("cosmos-docs")),
//	)
//
// # Prometheus Metrics
//
//	cfg.WithEventMiddleware(middleware.Prometheus(middleware.WithNamespace("cosmos")))
//
// Session lifecycle, clipboard outcomes and WebSocket errors are recorded
// by the server through the Record* functions.
package middleware
