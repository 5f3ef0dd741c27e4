package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"bankfront/internal/shared/config"
)

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.TelemetryConfig{
		ServiceName:  "bankfront",
		Environment:  "staging",
		Version:      "1.4.0",
		OTLPEndpoint: "tempo:4317",
		MetricsPort:  "9091",
		SampleRatio:  0.5,
	}, "web")

	assert.Equal(t, "bankfront-web", cfg.ServiceName())
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "1.4.0", cfg.Version)
	assert.Equal(t, "tempo:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "9091", cfg.MetricsPort)
	assert.Equal(t, 0.5, cfg.SampleRatio)

	assert.Equal(t, "bankfront", Config{Namespace: "bankfront"}.ServiceName())
}

func TestResource(t *testing.T) {
	cfg := Config{Namespace: "bankfront", Component: "api", Environment: "production", Version: "2.0.1"}

	res, err := Resource(cfg)
	require.NoError(t, err)

	attrs := res.Set()
	get := func(key attribute.Key) string {
		v, ok := attrs.Value(key)
		require.True(t, ok, "missing %s", key)
		return v.AsString()
	}

	assert.Equal(t, "bankfront-api", get(semconv.ServiceNameKey))
	assert.Equal(t, "bankfront", get(semconv.ServiceNamespaceKey))
	assert.Equal(t, "2.0.1", get(semconv.ServiceVersionKey))
	assert.Equal(t, "production", get(semconv.DeploymentEnvironmentKey))

	id := get(semconv.ServiceInstanceIDKey)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	other, err := Resource(cfg)
	require.NoError(t, err)
	otherID, _ := other.Set().Value(semconv.ServiceInstanceIDKey)
	assert.NotEqual(t, id, otherID.AsString())
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1, sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()},
		{2, sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()},
		{0, sdktrace.ParentBased(sdktrace.NeverSample()).Description()},
		{0.25, sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25)).Description()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sampler(tt.ratio).Description(), "ratio %v", tt.ratio)
	}
}

func TestMetricsServer(t *testing.T) {
	srv := metricsServer("9464")
	assert.Equal(t, ":9464", srv.Addr)

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
