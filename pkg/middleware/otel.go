package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelConfig configures OpenTelemetry. Build it through OTelOption values.
type OTelConfig struct {
	// TracerName defaults to "cosmos-docs".
	TracerName string
	// IncludeValue adds the selected option value to select spans. On by
	// default.
	IncludeValue bool
	// Filter skips tracing for events it returns false for.
	Filter func(ev *Event) bool
	// AttributeExtractor adds attributes to every span.
	AttributeExtractor func(ev *Event) []attribute.KeyValue
	// TracerProvider replaces the global provider.
	TracerProvider trace.TracerProvider
}

type OTelOption func(*OTelConfig)

func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

func WithIncludeValue(include bool) OTelOption {
	return func(c *OTelConfig) { c.IncludeValue = include }
}

func WithEventFilter(filter func(ev *Event) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

func WithAttributeExtractor(extractor func(ev *Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = extractor }
}

func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) { c.TracerProvider = tp }
}

// OpenTelemetry opens a server span named "cosmos.<action>" around every
// event and hands the span context to the rest of the chain through
// ev.Context. Handler errors are recorded on the span.
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: "cosmos-docs", IncludeValue: true}
	for _, opt := range opts {
		opt(&config)
	}
	provider := config.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(config.TracerName)

	return func(next Handler) Handler {
		return func(ev *Event) error {
			if config.Filter != nil && !config.Filter(ev) {
				return next(ev)
			}

			parent := ev.Context
			if parent == nil {
				parent = context.Background()
			}
			ctx, span := tracer.Start(parent, "cosmos."+ev.Action(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(config.attributes(ev)...))
			defer span.End()

			ev.Context = ctx
			err := next(ev)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
			span.SetStatus(codes.Ok, "")
			return nil
		}
	}
}

func (c *OTelConfig) attributes(ev *Event) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("cosmos.preview", ev.Preview),
		attribute.String("cosmos.session_id", ev.SessionID),
		attribute.String("cosmos.event_type", ev.Action()),
		attribute.String("cosmos.event_target", ev.HID),
		attribute.String("cosmos.dom_event", ev.DOMEvent),
	}
	if control := ev.Control(); control != "" {
		attrs = append(attrs, attribute.String("cosmos.control", control))
		if c.IncludeValue {
			attrs = append(attrs, attribute.String("cosmos.value", ev.Meta["value"]))
		}
	}
	if c.AttributeExtractor != nil {
		attrs = append(attrs, c.AttributeExtractor(ev)...)
	}
	return attrs
}

// SpanFromEvent returns the span opened for ev, or nil when ev is not
// traced.
func SpanFromEvent(ev *Event) trace.Span {
	if ev == nil || ev.Context == nil {
		return nil
	}
	if span := trace.SpanFromContext(ev.Context); span.SpanContext().IsValid() {
		return span
	}
	return nil
}
