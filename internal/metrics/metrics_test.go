package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObserveUnit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveUnit("equity", true, 2*time.Second)
	m.ObserveUnit("equity", false, time.Second)
	m.ObserveUnit("curve", true, time.Second)

	if got := testutil.ToFloat64(m.Units.WithLabelValues("equity", "ok")); got != 1 {
		t.Errorf("equity ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Units.WithLabelValues("equity", "failed")); got != 1 {
		t.Errorf("equity failed = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.UnitDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestMetrics_AddEntries(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AddEntries("equities", 263)
	m.AddEntries("equities", 1)

	if got := testutil.ToFloat64(m.Entries.WithLabelValues("equities")); got != 264 {
		t.Errorf("entries = %v, want 264", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveUnit("equity", true, time.Second)
	m.AddEntries("curves", 1)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.AddEntries("curves", 3)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(rec.Body.String(), `mdexport_archive_entries_total{archive="curves"} 3`) {
		t.Errorf("metrics body missing entries counter:\n%s", rec.Body.String())
	}
}
