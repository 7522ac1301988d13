package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ProtocolREST    = "rest"
	ProtocolGraphQL = "graphql"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by protocol.",
		},
		[]string{"protocol"},
	)

	bookingNotFound = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "booking_not_found_total",
			Help:      "Count of booking lookups that matched no record, by protocol.",
		},
		[]string{"protocol"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingNotFound)
	})
}

func IncBookingCreated(protocol string) {
	bookingCreated.WithLabelValues(protocol).Inc()
}

func IncBookingNotFound(protocol string) {
	bookingNotFound.WithLabelValues(protocol).Inc()
}
