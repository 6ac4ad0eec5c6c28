package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts store activity. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	roomsAdded    prometheus.Counter
	bookings      prometheus.Counter
	checkouts     prometheus.Counter
	failures      *prometheus.CounterVec
	occupiedRooms prometheus.Gauge
	saveDuration  prometheus.Histogram
}

// NewMetrics registers the store's collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		roomsAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "rooms_added_total",
			Help:      "Rooms added to the store.",
		}),
		bookings: f.NewCounter(prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		}),
		checkouts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "checkouts_total",
			Help:      "Rooms released by check-out.",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hotel",
			Name:      "operation_failures_total",
			Help:      "Store operations that failed, by reason.",
		}, []string{"reason"}),
		occupiedRooms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "hotel",
			Name:      "occupied_rooms",
			Help:      "Rooms currently Occupied.",
		}),
		saveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hotel",
			Name:      "save_duration_seconds",
			Help:      "Time spent rewriting the persisted collections.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
}

func (m *Metrics) roomAdded() {
	if m != nil {
		m.roomsAdded.Inc()
	}
}

func (m *Metrics) bookingCreated() {
	if m != nil {
		m.bookings.Inc()
	}
}

func (m *Metrics) checkedOut() {
	if m != nil {
		m.checkouts.Inc()
	}
}

func (m *Metrics) fail(reason error) {
	if m != nil {
		m.failures.WithLabelValues(reason.Error()).Inc()
	}
}

func (m *Metrics) setOccupied(n int) {
	if m != nil {
		m.occupiedRooms.Set(float64(n))
	}
}

func (m *Metrics) observeSave(d time.Duration) {
	if m != nil {
		m.saveDuration.Observe(d.Seconds())
	}
}
