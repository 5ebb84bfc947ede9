package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"TrendScope/internal/logger"
	"TrendScope/internal/model"
)

// Metrics holds the Prometheus metrics of watch mode.
type Metrics struct {
	RunsTotal   *prometheus.CounterVec // labels: result
	TrendTotal  *prometheus.CounterVec // labels: label
	RunDuration prometheus.Histogram
	LastClose   *prometheus.GaugeVec // labels: symbol
	LastRSI     *prometheus.GaugeVec // labels: symbol

	gatherer prometheus.Gatherer
}

// New registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscope_runs_total",
			Help: "Analysis runs by result.",
		}, []string{"result"}),
		TrendTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscope_trend_total",
			Help: "Trend classifications by label.",
		}, []string{"label"}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "trendscope_run_duration_seconds",
			Help:    "Time spent collecting and analyzing one series.",
			Buckets: prometheus.DefBuckets,
		}),
		LastClose: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "trendscope_last_close",
			Help: "Close of the most recent analyzed bar.",
		}, []string{"symbol"}),
		LastRSI: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "trendscope_last_rsi",
			Help: "Latest RSI(14) reading; absent while undefined.",
		}, []string{"symbol"}),
		gatherer: reg,
	}
}

// ObserveRun records the outcome of one analysis run. rep may be nil on failure.
func (m *Metrics) ObserveRun(rep *model.Report, elapsed time.Duration, err error) {
	m.RunDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.RunsTotal.WithLabelValues("error").Inc()
		return
	}
	m.RunsTotal.WithLabelValues("ok").Inc()
	if rep.Trend != "" {
		m.TrendTotal.WithLabelValues(string(rep.Trend)).Inc()
	}
	m.LastClose.WithLabelValues(rep.Symbol).Set(rep.LastBar.Close)
	if rsi := rep.Latest[model.IndicatorRSI]; rsi.Valid {
		m.LastRSI.WithLabelValues(rep.Symbol).Set(rsi.Float)
	} else {
		m.LastRSI.DeleteLabelValues(rep.Symbol)
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Serve runs the /metrics endpoint until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
