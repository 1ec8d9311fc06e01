package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/praneeth-grandhi/Hostel-Management/config"
)

// set once by InitTracing, before the router is built
var (
	tracer         trace.Tracer
	tracerProvider *sdktrace.TracerProvider
	serviceName    = unknownService
)

// InitTracing installs a global tracer provider that batches spans to an
// OTLP/HTTP collector. Pair it with Shutdown.
func InitTracing(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithCompression(otlptracehttp.GzipCompression),
	)
	if err != nil {
		return fmt.Errorf("create OTLP exporter: %w", err)
	}

	// partial detection failure still yields a usable fallback resource
	res, _ := CreateResource(ctx, cfg.Service)
	serviceName = GetServiceName(res)

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(5*time.Second),
			sdktrace.WithMaxExportBatchSize(cfg.Tracing.MaxExportBatchSize),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Tracing.SampleRate))),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracer = tracerProvider.Tracer(serviceName)
	return nil
}

// TracingMiddleware opens a server span per API request. Probe and scrape
// endpoints are not traced.
func TracingMiddleware() gin.HandlerFunc {
	otelMiddleware := otelgin.Middleware(
		serviceName,
		otelgin.WithTracerProvider(otel.GetTracerProvider()),
	)

	return func(c *gin.Context) {
		if isInfrastructurePath(c.Request.URL.Path) {
			c.Next()
			return
		}
		otelMiddleware(c)
	}
}

// GetTracer returns the service tracer, or a no-op one when tracing is off
func GetTracer() trace.Tracer {
	if tracer != nil {
		return tracer
	}
	return otel.Tracer(serviceName)
}

// StartSpan starts a child span of whatever span ctx carries
//
//	ctx, span := middleware.StartSpan(ctx, "hostel.create")
//	defer span.End()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	//nolint:spancheck // the caller ends the span
	return GetTracer().Start(ctx, name, opts...)
}

// Shutdown flushes pending spans and stops the tracer provider. It is a no-op
// when InitTracing was never called.
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	if err := tracerProvider.ForceFlush(ctx); err != nil {
		return fmt.Errorf("flush traces: %w", err)
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}

// RecordError marks the span in ctx as failed
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
