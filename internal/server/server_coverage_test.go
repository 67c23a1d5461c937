package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/mlb-stats-service/internal/config"
	"github.com/preston-bernstein/mlb-stats-service/internal/metrics"
	"github.com/preston-bernstein/mlb-stats-service/internal/testutil"
)

// metricsSetupSuccess allows us to force a handler to test buildMetrics success path.
func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	return rec, http.NewServeMux(), shutdown, nil
}

func metricsSetupFailure(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	return nil, nil, nil, errors.New("exporter unavailable")
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics addr :9999, got %s", srv.Addr())
	}
}

func TestBuildMetricsFailureFallsBackToRecorder(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupFailure

	logger, buf := testutil.NewBufferLogger()
	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, logger, nil)

	if rec == nil {
		t.Fatalf("expected fallback recorder")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server on failure")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected setup failure to be logged")
	}
}

func TestBuildMetricsKeepsInjectedRecorder(t *testing.T) {
	injected := metrics.NewRecorder()
	rec, srv, stop := buildMetrics(config.Config{}, nil, injected)
	if rec != injected || srv != nil || stop != nil {
		t.Fatalf("expected injected recorder passthrough")
	}
}
