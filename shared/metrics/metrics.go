// Package metrics exposes the Prometheus collectors of the allocation service.
// Collectors are registered on the default registry at init; label values are bounded enums.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crowd"

var (
	bookingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_total",
		Help:      "Committed bookings by user type and resulting status",
	}, []string{"user_type", "status"})
	overloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_overloads_total",
		Help:      "Requests rejected because no slot was free in the search horizon",
	}, []string{"user_type"})
	reserveConflictsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slot_reserve_conflicts_total",
		Help:      "Reservations that lost a race for a load cell and retried the slot search",
	})
	redistributedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redistributed_bookings_total",
		Help:      "Bookings moved to the next day by administrative redistribution",
	})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status code",
	}, []string{"method", "route", "code"})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		bookingsTotal,
		overloadsTotal,
		reserveConflictsTotal,
		redistributedTotal,
		httpRequestsTotal,
		httpRequestDuration,
	)
}

func ObserveBooking(userType, status string) {
	bookingsTotal.WithLabelValues(userType, status).Inc()
}

func ObserveOverload(userType string) {
	overloadsTotal.WithLabelValues(userType).Inc()
}

func ObserveReserveConflict() {
	reserveConflictsTotal.Inc()
}

func ObserveRedistributed(count int) {
	redistributedTotal.Add(float64(count))
}

func ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
