// Package server exposes an optional Prometheus diagnostics endpoint for
// interactive sessions. It is disabled unless an address is configured; the
// calculator itself never depends on it.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/logging"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// Metrics holds the Prometheus collectors for the application. A dedicated
// registry is used so repeated construction (e.g. in tests) never collides
// with global registrations.
type Metrics struct {
	registry       *prometheus.Registry
	calculations   *prometheus.CounterVec
	vo2maxRelative prometheus.Histogram
	handler        http.Handler
}

// NewMetrics creates and registers the application collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vo2calc_calculations_total",
		Help: "Number of completed VO2max estimations, by test protocol.",
	}, []string{"protocol"})

	vo2maxRelative := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "vo2calc_vo2max_relative_ml_kg_min",
		Help:    "Distribution of estimated relative VO2max values.",
		Buckets: prometheus.LinearBuckets(25, 5, 12),
	})

	registry.MustRegister(calculations, vo2maxRelative)

	return &Metrics{
		registry:       registry,
		calculations:   calculations,
		vo2maxRelative: vo2maxRelative,
		handler:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
}

// ObserveCalculation records one completed estimation.
func (m *Metrics) ObserveCalculation(protocol vo2max.Protocol, res vo2max.Result) {
	m.calculations.WithLabelValues(string(protocol)).Inc()
	m.vo2maxRelative.Observe(res.VO2maxRelative)
}

// Handler returns the HTTP handler serving the metrics exposition format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Serve runs a metrics HTTP server on addr until ctx is cancelled, then shuts
// it down gracefully. It returns nil on clean shutdown.
func Serve(ctx context.Context, addr string, m *Metrics, log logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", logging.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return apperrors.WrapError(err, "shutting down metrics server")
		}
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return apperrors.WrapError(err, "metrics server failed")
		}
		return nil
	}
}
