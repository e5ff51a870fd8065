package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/showcase/pkg/server"
)

const defaultTracerName = "github.com/vango-dev/showcase"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer.
	TracerName string

	// IncludeArgs records action arguments as a span attribute. Toast
	// messages are user text, so this is off by default.
	IncludeArgs bool

	// Filter determines which actions to trace. If nil, all are traced.
	Filter func(a *server.Action) bool

	// AttributeExtractor adds custom attributes per action.
	AttributeExtractor func(a *server.Action) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeArgs enables recording action arguments.
func WithIncludeArgs(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeArgs = include
	}
}

// WithActionFilter sets a filter function for actions.
func WithActionFilter(filter func(a *server.Action) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(a *server.Action) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates middleware that opens a span for every action.
// The span context replaces the action's context, so handlers further down
// can reach it with SpanFromAction.
//
// The tracer comes from the global provider; configure it with
// otel.SetTracerProvider before starting the server.
func OpenTelemetry(opts ...OTelOption) server.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next server.HandlerFunc) server.HandlerFunc {
		return func(a *server.Action) error {
			if config.Filter != nil && !config.Filter(a) {
				return next(a)
			}

			attrs := []attribute.KeyValue{
				attribute.String("showcase.action", a.Name),
				attribute.String("showcase.session_id", a.SessionID),
			}
			if config.IncludeArgs {
				attrs = append(attrs, attribute.StringSlice("showcase.args", a.Args))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(a)...)
			}

			spanCtx, span := config.tracer.Start(
				a.Context(),
				fmt.Sprintf("showcase.%s", a.Name),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			err := next(a.WithContext(spanCtx))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			if ctrl := a.Controller(); ctrl != nil {
				span.SetAttributes(
					attribute.Bool("showcase.modal_open", ctrl.Modal().Open),
					attribute.Bool("showcase.toast_visible", ctrl.Toast().Show),
				)
			}
			return err
		}
	}
}

// SpanFromAction returns the span carried by the action's context.
func SpanFromAction(a *server.Action) trace.Span {
	return trace.SpanFromContext(a.Context())
}

// TraceContext returns the action's context for propagation to outbound
// calls.
func TraceContext(a *server.Action) context.Context {
	return a.Context()
}
