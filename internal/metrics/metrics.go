package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the booking workflow counters exposed on /metrics
type Metrics struct {
	Bookings            prometheus.Counter
	TicketCancellations prometheus.Counter
	Checkins            prometheus.Counter
	SeatAssignments     prometheus.Counter
	FlightsCreated      prometheus.Counter
	FlightCancellations prometheus.Counter
}

// New registers the counters with the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Bookings: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_bookings_total",
			Help: "Number of tickets booked.",
		}),
		TicketCancellations: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_ticket_cancellations_total",
			Help: "Number of tickets cancelled by their number.",
		}),
		Checkins: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_checkins_total",
			Help: "Number of completed check-ins.",
		}),
		SeatAssignments: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_seat_assignments_total",
			Help: "Number of explicit seat reservations.",
		}),
		FlightsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_flights_created_total",
			Help: "Number of flights created.",
		}),
		FlightCancellations: factory.NewCounter(prometheus.CounterOpts{
			Name: "airline_flight_cancellations_total",
			Help: "Number of flights cancelled.",
		}),
	}
}
