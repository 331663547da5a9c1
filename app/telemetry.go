package app

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	serviceName = "loom-chain"
	environment = "testnet"
)

// TelemetryConfig holds the configuration for telemetry
type TelemetryConfig struct {
	Enabled           bool
	JaegerEndpoint    string
	PrometheusEnabled bool
	MetricsPort       string
	SampleRate        float64
}

// Telemetry owns the OpenTelemetry providers. Once initialized, the global
// otel tracer and meter point at them, so instrumented code anywhere in the
// node (the ante chain included) reports through here.
type Telemetry struct {
	tracer       *trace.TracerProvider
	config       TelemetryConfig
	shutdownFunc func(context.Context) error
}

// InitTelemetry initializes OpenTelemetry tracing and metrics
func InitTelemetry(cfg TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{config: cfg}, nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("1.0.0"),
			attribute.String("environment", environment),
			attribute.String("chain.id", "loom-1"),
		),
	)
	if err != nil {
		return nil, err
	}

	tel := &Telemetry{config: cfg}
	if err := tel.initTracing(res); err != nil {
		return nil, err
	}
	if err := tel.initMetrics(res); err != nil {
		return nil, err
	}
	return tel, nil
}

// initTracing sets up OTLP/HTTP tracing with parent-based sampling.
func (t *Telemetry) initTracing(res *resource.Resource) error {
	if _, err := url.Parse(t.config.JaegerEndpoint); err != nil {
		return err
	}

	endpoint := strings.TrimPrefix(t.config.JaegerEndpoint, "http://")
	exp, err := otlptracehttp.New(context.Background(), otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(
			trace.TraceIDRatioBased(t.config.SampleRate),
		)),
	)

	otel.SetTracerProvider(tp)
	t.tracer = tp
	t.shutdownFunc = tp.Shutdown

	return nil
}

// initMetrics exposes the otel meter through the Prometheus default registry,
// next to the jobs and health collectors.
func (t *Telemetry) initMetrics(res *resource.Resource) error {
	if !t.config.PrometheusEnabled {
		return nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return err
	}

	provider := metricsdk.NewMeterProvider(
		metricsdk.WithResource(res),
		metricsdk.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	return nil
}

// Shutdown gracefully shuts down telemetry
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.shutdownFunc != nil {
		return t.shutdownFunc(ctx)
	}
	return nil
}

// normalizeRPCURL converts CometBFT-style RPC addresses into URLs usable by
// HTTP clients. tcp:// becomes http://, http(s) and unix endpoints pass
// through, and blank input yields an empty string.
func normalizeRPCURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "tcp://") {
		return "http://" + strings.TrimPrefix(trimmed, "tcp://")
	}

	return trimmed
}
