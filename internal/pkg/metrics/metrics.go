package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder - то, что ядро сообщает о своей работе
type Recorder interface {
	ReportIngested(source string, accepted bool)
	LiveAvailability(pct float64)
	ZonesServed(count int, took time.Duration)
	InventoryLoaded(facilities, dropped int)
}

// Nop - Recorder, который ничего не делает (метрики выключены, тесты)
type Nop struct{}

func (Nop) ReportIngested(string, bool)    {}
func (Nop) LiveAvailability(float64)       {}
func (Nop) ZonesServed(int, time.Duration) {}
func (Nop) InventoryLoaded(int, int)       {}

// PromRecorder records service events in Prometheus metrics.
type PromRecorder struct {
	reports     *prometheus.CounterVec
	live        prometheus.Gauge
	queries     prometheus.Counter
	fusion      prometheus.Histogram
	facilities  prometheus.Gauge
	droppedRows prometheus.Gauge
}

// NewPromRecorder registers the collectors on reg. If reg is nil, the default
// registerer is used. Already registered collectors are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PromRecorder{
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_reports_total",
			Help: "Occupancy reports received from the vision sensor",
		}, []string{"source", "accepted"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parking_live_availability_percent",
			Help: "Availability of the instrumented zone from the last accepted report",
		}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parking_zone_queries_total",
			Help: "Fused zone list requests served",
		}),
		fusion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "parking_fusion_duration_seconds",
			Help:    "Time spent building the fused zone list",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		facilities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parking_inventory_facilities",
			Help: "Facilities in the current inventory snapshot",
		}),
		droppedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parking_inventory_dropped_rows",
			Help: "Rows dropped by the last inventory load",
		}),
	}

	var err error
	if r.reports, err = register(reg, r.reports); err != nil {
		return nil, err
	}
	if r.live, err = register(reg, r.live); err != nil {
		return nil, err
	}
	if r.queries, err = register(reg, r.queries); err != nil {
		return nil, err
	}
	if r.fusion, err = register(reg, r.fusion); err != nil {
		return nil, err
	}
	if r.facilities, err = register(reg, r.facilities); err != nil {
		return nil, err
	}
	if r.droppedRows, err = register(reg, r.droppedRows); err != nil {
		return nil, err
	}

	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PromRecorder) ReportIngested(source string, accepted bool) {
	r.reports.WithLabelValues(source, strconv.FormatBool(accepted)).Inc()
}

func (r *PromRecorder) LiveAvailability(pct float64) {
	r.live.Set(pct)
}

func (r *PromRecorder) ZonesServed(count int, took time.Duration) {
	r.queries.Inc()
	r.fusion.Observe(took.Seconds())
}

func (r *PromRecorder) InventoryLoaded(facilities, dropped int) {
	r.facilities.Set(float64(facilities))
	r.droppedRows.Set(float64(dropped))
}
