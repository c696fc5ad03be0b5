package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromRecorder_ReportIngested(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}

	rec.ReportIngested("http", true)
	rec.ReportIngested("http", true)
	rec.ReportIngested("mqtt", false)

	expected := `
# HELP parking_reports_total Occupancy reports received from the vision sensor
# TYPE parking_reports_total counter
parking_reports_total{accepted="false",source="mqtt"} 1
parking_reports_total{accepted="true",source="http"} 2
`
	if err := testutil.CollectAndCompare(rec.reports, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromRecorder_Gauges(t *testing.T) {
	rec, err := NewPromRecorder(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}

	rec.LiveAvailability(58.3)
	rec.InventoryLoaded(42, 3)
	rec.ZonesServed(42, 150*time.Microsecond)

	if v := testutil.ToFloat64(rec.live); v != 58.3 {
		t.Errorf("live availability = %v, want 58.3", v)
	}
	if v := testutil.ToFloat64(rec.facilities); v != 42 {
		t.Errorf("facilities = %v, want 42", v)
	}
	if v := testutil.ToFloat64(rec.droppedRows); v != 3 {
		t.Errorf("dropped rows = %v, want 3", v)
	}
	if v := testutil.ToFloat64(rec.queries); v != 1 {
		t.Errorf("queries = %v, want 1", v)
	}
	if c := testutil.CollectAndCount(rec.fusion); c == 0 {
		t.Errorf("fusion duration not recorded")
	}
}

func TestNewPromRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("first recorder: %v", err)
	}
	second, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("second recorder: %v", err)
	}

	first.ReportIngested("stream", true)
	if v := testutil.ToFloat64(second.reports.WithLabelValues("stream", "true")); v != 1 {
		t.Errorf("second recorder should share counters, got %v", v)
	}
}
