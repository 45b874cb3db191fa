package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mdexport"

// Metrics holds the run collectors.
type Metrics struct {
	Units        *prometheus.CounterVec
	Entries      *prometheus.CounterVec
	UnitDuration *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Units: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Units of work processed, by kind and status.",
		}, []string{"kind", "status"}),
		Entries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_entries_total",
			Help:      "JSON entries written into archives, by archive family.",
		}, []string{"archive"}),
		UnitDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "unit_duration_seconds",
			Help:      "Wall time spent on one unit of work.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"kind"}),
	}
}

// ObserveUnit records a finished unit.
func (m *Metrics) ObserveUnit(kind string, ok bool, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "failed"
	}
	m.Units.WithLabelValues(kind, status).Inc()
	m.UnitDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// AddEntries counts entries written into an archive family.
func (m *Metrics) AddEntries(archive string, n int) {
	if m == nil {
		return
	}
	m.Entries.WithLabelValues(archive).Add(float64(n))
}

// Handler serves the collectors registered with g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
