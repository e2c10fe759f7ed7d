package service

import (
	"context"
	"time"

	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/metrics"
	"github.com/tillik/airlinewebservice/internal/websocket"
	"go.uber.org/zap"
)

// Store is the persistence surface the booking service needs. It is
// satisfied by *database.Store.
type Store interface {
	CreateAircraft(ctx context.Context, a *database.Aircraft) error
	GetAircraft(ctx context.Context, name string) (*database.Aircraft, error)
	ListAircraft(ctx context.Context) ([]database.Aircraft, error)
	DeleteAircraft(ctx context.Context, name string) error

	CreateFlight(ctx context.Context, f *database.Flight, seats []database.Seat) error
	GetFlight(ctx context.Context, number string) (*database.Flight, error)
	ListFlights(ctx context.Context) ([]database.Flight, error)
	CancelFlight(ctx context.Context, number string) ([]string, error)

	BookTicket(ctx context.Context, t *database.Ticket) error
	GetTicket(ctx context.Context, number string) (*database.Ticket, error)
	ListTickets(ctx context.Context) ([]database.Ticket, error)
	DeleteTicket(ctx context.Context, number string) error
	CheckIn(ctx context.Context, ticketnumber, flightnumber string) (*database.Seat, error)

	ListSeats(ctx context.Context, flightnumber string) ([]database.Seat, error)
	AssignSeat(ctx context.Context, flightnumber, ticketnumber, label string, row int) (*database.Seat, error)

	ListNotifications(ctx context.Context, ticketnumber string) ([]database.Notification, error)
}

// CreateFlightRequest is the validated write view of a flight
type CreateFlightRequest struct {
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Date     time.Time `json:"date"`
	Aircraft string    `json:"aircraft"`
}

// BookTicketRequest carries the fields of a booking command
type BookTicketRequest struct {
	Flightnumber   string `json:"flightnumber"`
	Passengername  string `json:"passengername"`
	Passportnumber string `json:"passportnumber"`
}

// ReserveSeatRequest requests a specific seat for a ticket
type ReserveSeatRequest struct {
	Ticketnumber string `json:"ticketnumber"`
	Flightnumber string `json:"flightnumber"`
	Seatlabel    string `json:"seatlabel"`
	Seatrow      int    `json:"seatrow"`
}

// BookingService defines the booking domain operations
type BookingService interface {
	CreateAircraft(ctx context.Context, a database.Aircraft) (*database.Aircraft, error)
	GetAircraft(ctx context.Context, name string) (*database.Aircraft, error)
	ListAircraft(ctx context.Context) ([]database.Aircraft, error)
	DeleteAircraft(ctx context.Context, name string) error

	CreateFlight(ctx context.Context, req CreateFlightRequest) (*database.Flight, error)
	GetFlight(ctx context.Context, number string) (*database.Flight, error)
	ListFlights(ctx context.Context) ([]database.Flight, error)
	CancelFlight(ctx context.Context, number string) (int, error)

	BookTicket(ctx context.Context, req BookTicketRequest) (*database.Ticket, error)
	GetTicket(ctx context.Context, number string) (*database.Ticket, error)
	ListTickets(ctx context.Context) ([]database.Ticket, error)
	CancelTicket(ctx context.Context, number string) error
	CheckIn(ctx context.Context, ticketnumber, flightnumber string) (*database.Seat, error)

	ListSeats(ctx context.Context, flightnumber string) ([]database.Seat, error)
	ReserveSeat(ctx context.Context, req ReserveSeatRequest) (*database.Seat, error)

	ListNotifications(ctx context.Context, ticketnumber string) ([]database.Notification, error)
}

type bookingService struct {
	store   Store
	log     *zap.Logger
	metrics *metrics.Metrics
	hub     *websocket.Hub
}

// NewBookingService creates a new BookingService
func NewBookingService(store Store, log *zap.Logger, m *metrics.Metrics, hub *websocket.Hub) BookingService {
	return &bookingService{
		store:   store,
		log:     log,
		metrics: m,
		hub:     hub,
	}
}
