package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking outcomes.
const (
	OutcomeStarted   = "started"
	OutcomeRejected  = "rejected"
	OutcomeConfirmed = "confirmed"
)

// Metrics holds the session collectors on a private registry. A nil
// *Metrics records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	Renders         *prometheus.CounterVec
	Bookings        *prometheus.CounterVec
	Searches        prometheus.Counter
	LiveInstances   *prometheus.GaugeVec
	FilterSelection prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cruzr_renders_total",
				Help: "Result renders by outcome (cards or empty).",
			},
			[]string{"result"},
		),
		Bookings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cruzr_bookings_total",
				Help: "Booking workflow outcomes.",
			},
			[]string{"outcome"},
		),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cruzr_searches_total",
			Help: "Submitted searches.",
		}),
		LiveInstances: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cruzr_workflow_live_instances",
				Help: "Live transient workflow instances per slot.",
			},
			[]string{"slot"},
		),
		FilterSelection: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cruzr_filter_matches",
			Help:    "Vehicles matched per filter pass.",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		}),
	}
	m.Registry.MustRegister(m.Renders, m.Bookings, m.Searches, m.LiveInstances, m.FilterSelection)
	return m
}

func (m *Metrics) ObserveRender(cards int) {
	if m == nil {
		return
	}
	result := "cards"
	if cards == 0 {
		result = "empty"
	}
	m.Renders.WithLabelValues(result).Inc()
	m.FilterSelection.Observe(float64(cards))
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.Bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSearch() {
	if m == nil {
		return
	}
	m.Searches.Inc()
}

func (m *Metrics) SetLive(slot string, n int) {
	if m == nil {
		return
	}
	m.LiveInstances.WithLabelValues(slot).Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
