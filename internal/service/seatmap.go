package service

import "github.com/tillik/airlinewebservice/internal/database"

const (
	seatLabels       = "ABCDEFG"
	seatRowsPerLabel = 19

	// MaxSeatsPerFlight caps the generated inventory at the full A1..G19 grid
	MaxSeatsPerFlight = len(seatLabels) * seatRowsPerLabel
)

// seatPlan enumerates a flight's seat inventory in label-major order
// (A1, A2, .., A19, B1, .., G19), stopping once the aircraft capacity is
// reached. The enumeration is deterministic; auto-assignment picks free
// seats in exactly this order.
func seatPlan(flightnumber string, capacity int) []database.Seat {
	if capacity > MaxSeatsPerFlight {
		capacity = MaxSeatsPerFlight
	}
	seats := make([]database.Seat, 0, capacity)
	for _, label := range seatLabels {
		for row := 1; row <= seatRowsPerLabel; row++ {
			if len(seats) == capacity {
				return seats
			}
			seats = append(seats, database.Seat{
				Flightnumber: flightnumber,
				Seatlabel:    string(label),
				Seatrow:      row,
			})
		}
	}
	return seats
}
