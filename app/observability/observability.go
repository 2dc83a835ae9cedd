// Package observability builds the logger, tracer and metrics shared by every
// module.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Black-And-White-Club/darts-league/app/shared/metrics"
	"github.com/Black-And-White-Club/darts-league/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/Black-And-White-Club/darts-league"

// Provider owns the logger.
type Provider struct {
	Logger *slog.Logger
}

// Registry owns tracing and metrics.
type Registry struct {
	Tracer     trace.Tracer
	Prometheus *prometheus.Registry
	Metrics    metrics.OperationMetrics
}

// Observability bundles what modules need to log, trace and count.
type Observability struct {
	Provider *Provider
	Registry *Registry
}

// New builds observability from config, writing logs to stdout.
func New(cfg config.ObservabilityConfig) Observability {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds observability writing logs to w.
func NewWithWriter(cfg config.ObservabilityConfig, w io.Writer) Observability {
	logger := NewLogger(cfg.Environment, cfg.LogLevel, w).With(
		slog.String("service", cfg.ServiceName),
	)

	reg := prometheus.NewRegistry()
	var m metrics.OperationMetrics = metrics.NewNoop()
	if cfg.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.NewPrometheusMetrics(reg, "darts")
	}

	return Observability{
		Provider: &Provider{Logger: logger},
		Registry: &Registry{
			Tracer:     otel.Tracer(instrumentationName),
			Prometheus: reg,
			Metrics:    m,
		},
	}
}

// NewNoop returns observability that discards everything; used by tests.
func NewNoop() Observability {
	return Observability{
		Provider: &Provider{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		Registry: &Registry{
			Tracer:     noop.NewTracerProvider().Tracer("test"),
			Prometheus: prometheus.NewRegistry(),
			Metrics:    metrics.NewNoop(),
		},
	}
}

// NewLogger returns a JSON logger in production and a text logger elsewhere.
func NewLogger(environment, level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(environment, "production") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
