// Package middleware provides observability middleware for showcase
// actions.
//
// Both middlewares have the server.Middleware shape and are installed
// through ServerConfig.Middleware:
//
//	reg := prometheus.NewRegistry()
//	cfg := server.DefaultServerConfig()
//	cfg.Registry, cfg.Gatherer = reg, reg
//	cfg.Middleware = []server.Middleware{
//	    middleware.OpenTelemetry(middleware.WithTracerName("showcase")),
//	    middleware.Prometheus(middleware.WithRegistry(reg)),
//	}
//
// # Prometheus Metrics
//
//   - showcase_actions_total: actions by name and status
//   - showcase_action_duration_seconds: action duration histogram
//   - showcase_action_errors_total: rejected actions by error type
//
// # OpenTelemetry
//
// Each action runs inside a span named "showcase.<action>" carrying the
// session ID. The span context becomes the action's context.
package middleware
