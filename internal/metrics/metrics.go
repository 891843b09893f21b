package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkreg_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_entries_total",
			Help: "Total number of registered vehicle entries",
		},
		[]string{"vehicle_type", "monthly"},
	)

	ExitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_exits_total",
			Help: "Total number of registered vehicle exits",
		},
		[]string{"vehicle_type", "monthly"},
	)

	RevenueTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_revenue_total",
			Help: "Fees charged at exit, in whole currency units",
		},
		[]string{"vehicle_type"},
	)

	EntriesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_entries_rejected_total",
			Help: "Entries refused, by reason",
		},
		[]string{"reason"},
	)

	OpenSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parkreg_open_sessions",
			Help: "Vehicles currently inside",
		},
	)

	SubscriptionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_subscription_events_total",
			Help: "Monthly subscription changes",
		},
		[]string{"event"},
	)

	TicketCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkreg_ticket_cache_total",
			Help: "Ticket image cache lookups",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordEntry(vehicleType string, monthly bool) {
	EntriesTotal.WithLabelValues(vehicleType, boolLabel(monthly)).Inc()
	OpenSessions.Inc()
}

func RecordExit(vehicleType string, monthly bool, cost int64) {
	ExitsTotal.WithLabelValues(vehicleType, boolLabel(monthly)).Inc()
	OpenSessions.Dec()
	if cost > 0 {
		RevenueTotal.WithLabelValues(vehicleType).Add(float64(cost))
	}
}

func RecordRejectedEntry(reason string) {
	EntriesRejectedTotal.WithLabelValues(reason).Inc()
}

// SetOpenSessions resyncs the gauge with the store.
func SetOpenSessions(n int) {
	OpenSessions.Set(float64(n))
}

func RecordSubscription(event string) {
	SubscriptionEventsTotal.WithLabelValues(event).Inc()
}

func RecordTicketCache(result string) {
	TicketCacheTotal.WithLabelValues(result).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
