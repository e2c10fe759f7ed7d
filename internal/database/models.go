package database

import (
	"fmt"
	"time"
)

// Aircraft is an aircraft type with its configured seat capacity. The type
// name is the primary key; the seat count bounds both generated seats and
// bookable tickets per flight.
type Aircraft struct {
	Aircraft  string `json:"aircraft"`
	Seatcount int    `json:"seatcount"`
}

// FlightStatus represents the lifecycle status of a flight
type FlightStatus string

const (
	FlightStatusValid     FlightStatus = "valid"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// Flight represents a scheduled flight
type Flight struct {
	Number    string       `json:"flightnumber"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Departure time.Time    `json:"departure"`
	Aircraft  string       `json:"aircraft"`
	Status    FlightStatus `json:"status"`
}

// Seat is one seat of a flight's pre-generated inventory. Ticketnumber is
// nil while the seat is unassigned.
type Seat struct {
	Flightnumber string  `json:"flightnumber"`
	Seatlabel    string  `json:"seatlabel"`
	Seatrow      int     `json:"seatrow"`
	Ticketnumber *string `json:"ticketnumber,omitempty"`
	Checkedin    bool    `json:"checkedin"`
}

// Seatcode is the external composite identifier of an assigned seat,
// "<ticketnumber>-<seatlabel><seatrow>". Empty while unassigned.
func (s Seat) Seatcode() string {
	if s.Ticketnumber == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s%d", *s.Ticketnumber, s.Seatlabel, s.Seatrow)
}

// TicketStatus represents the lifecycle status of a ticket
type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "valid"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// Ticket represents a booked ticket. A cancelled ticket keeps its
// flightnumber so the booking history per passport stays auditable.
type Ticket struct {
	Number         string       `json:"number"`
	Flightnumber   string       `json:"flightnumber"`
	Passengername  string       `json:"passengername"`
	Passportnumber string       `json:"passportnumber"`
	Status         TicketStatus `json:"status"`
}

// Notification is one row of the append-only audit trail for a ticket
type Notification struct {
	ID           int64     `json:"-"`
	Ticketnumber string    `json:"-"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// User is an authenticated principal with a role set
type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Active       bool     `json:"active"`
	Roles        []string `json:"roles"`
}
