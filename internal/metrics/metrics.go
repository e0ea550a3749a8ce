//go:build !tinygo

// Package metrics exports the monitor's loop events as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/463N7/CYD-wifi-monitor/monitor/render"
	"github.com/463N7/CYD-wifi-monitor/monitor/view"
)

const namespace = "cydmon"

// Metrics implements monitor.Observer and monitor.TallyObserver.
type Metrics struct {
	scans        *prometheus.CounterVec
	scanDuration prometheus.Histogram
	observed     prometheus.Gauge
	captured     prometheus.Gauge
	dropped      prometheus.Gauge
	toggles      *prometheus.CounterVec
	chNetworks   *prometheus.GaugeVec
	chWeight     *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Scan attempts by result.",
		}, []string{"result"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time from scan start to collected results.",
			Buckets:   []float64{0.25, 0.5, 1, 1.5, 2, 3, 5, 8},
		}),
		observed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_networks",
			Help:      "Networks reported by the last completed scan.",
		}),
		captured: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_networks",
			Help:      "Networks kept in the ranking snapshot.",
		}),
		dropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_dropped",
			Help:      "Networks of the last scan that did not fit the snapshot.",
		}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_changes_total",
			Help:      "Recognized view toggles by the view switched to.",
		}, []string{"view"}),
		chNetworks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_networks",
			Help:      "Networks seen per channel in the last completed scan.",
		}, []string{"channel"}),
		chWeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_weight",
			Help:      "RSSI-weighted congestion per channel in the last completed scan.",
		}, []string{"channel"}),
	}

	for _, c := range []prometheus.Collector{
		m.scans, m.scanDuration, m.observed, m.captured, m.dropped, m.toggles, m.chNetworks, m.chWeight,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) ScanStarted() {
	m.scans.WithLabelValues("started").Inc()
}

func (m *Metrics) ScanCompleted(observed, captured, dropped int, d time.Duration) {
	m.scans.WithLabelValues("completed").Inc()
	m.scanDuration.Observe(d.Seconds())
	m.observed.Set(float64(observed))
	m.captured.Set(float64(captured))
	m.dropped.Set(float64(dropped))
}

func (m *Metrics) ScanFailed() {
	m.scans.WithLabelValues("failed").Inc()
	m.observed.Set(0)
	m.captured.Set(0)
	m.dropped.Set(0)
}

func (m *Metrics) ViewChanged(mode view.Mode) {
	m.toggles.WithLabelValues(mode.String()).Inc()
}

func (m *Metrics) TalliesUpdated(c render.Channels) {
	min, max := c.Range()
	for ch := min; ch <= max; ch++ {
		t := c.Tally(ch)
		label := strconv.Itoa(ch)
		m.chNetworks.WithLabelValues(label).Set(float64(t.Count))
		m.chWeight.WithLabelValues(label).Set(t.Weight)
	}
}

// Serve exposes g on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log logrus.FieldLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	if log != nil {
		log.WithField("addr", addr).Info("metrics listening")
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
