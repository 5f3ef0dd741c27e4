// Package telemetry wires OpenTelemetry for the bankfront binaries: metrics
// on a Prometheus endpoint and traces over OTLP, both tagged with the
// identity of the running component.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"bankfront/internal/shared/config"
)

// Config identifies one running component of the system.
type Config struct {
	// Namespace groups the components, e.g. "bankfront".
	Namespace string
	// Component is the binary: "web" or "api".
	Component    string
	Environment  string
	Version      string
	OTLPEndpoint string
	MetricsPort  string
	SampleRatio  float64
}

// FromConfig derives the telemetry settings of component from the loaded
// configuration.
func FromConfig(cfg config.TelemetryConfig, component string) Config {
	return Config{
		Namespace:    cfg.ServiceName,
		Component:    component,
		Environment:  cfg.Environment,
		Version:      cfg.Version,
		OTLPEndpoint: cfg.OTLPEndpoint,
		MetricsPort:  cfg.MetricsPort,
		SampleRatio:  cfg.SampleRatio,
	}
}

// ServiceName is the name the component reports under.
func (c Config) ServiceName() string {
	if c.Component == "" {
		return c.Namespace
	}
	return c.Namespace + "-" + c.Component
}

// Resource describes the process on top of the SDK defaults. The attributes
// are schemaless so the merge keeps the SDK's schema URL. Every call gets a
// fresh service.instance.id.
func Resource(cfg Config) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName()),
			semconv.ServiceNamespace(cfg.Namespace),
			semconv.ServiceVersion(cfg.Version),
			semconv.ServiceInstanceID(uuid.NewString()),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
}

// Sampler keeps the parent's decision and samples new traces at ratio.
func Sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// Init installs the global meter and tracer providers and starts the
// metrics endpoint. The returned shutdown flushes and stops all of them.
// An empty OTLPEndpoint disables trace export.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error

	shutdown = func(ctx context.Context) error {
		var errs []error
		for i := len(shutdownFuncs) - 1; i >= 0; i-- {
			if err := shutdownFuncs[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return fmt.Errorf("telemetry shutdown: %w", errors.Join(errs...))
		}
		return nil
	}

	res, err := Resource(cfg)
	if err != nil {
		return shutdown, fmt.Errorf("failed to create resource: %w", err)
	}

	promExporter, err := prometheus.New()
	if err != nil {
		return shutdown, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	)
	otel.SetMeterProvider(meterProvider)
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)

	if cfg.OTLPEndpoint != "" {
		traceExporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return shutdown, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		tracerProvider := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(traceExporter, sdktrace.WithBatchTimeout(5*time.Second)),
			sdktrace.WithSampler(Sampler(cfg.SampleRatio)),
		)
		otel.SetTracerProvider(tracerProvider)
		shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.MetricsPort != "" {
		srv := metricsServer(cfg.MetricsPort)
		go func() {
			log.Info().Str("addr", srv.Addr).Msg("metrics server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("metrics server error")
			}
		}()
		shutdownFuncs = append(shutdownFuncs, srv.Shutdown)
	}

	log.Info().
		Str("service", cfg.ServiceName()).
		Str("environment", cfg.Environment).
		Str("version", cfg.Version).
		Float64("sample_ratio", cfg.SampleRatio).
		Str("otlp_endpoint", cfg.OTLPEndpoint).
		Msg("OpenTelemetry initialized")

	return shutdown, nil
}

func metricsServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
