package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/service"
)

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateAircraft(ctx context.Context, a database.Aircraft) (*database.Aircraft, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Aircraft), args.Error(1)
}

func (m *MockBookingService) GetAircraft(ctx context.Context, name string) (*database.Aircraft, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Aircraft), args.Error(1)
}

func (m *MockBookingService) ListAircraft(ctx context.Context) ([]database.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Aircraft), args.Error(1)
}

func (m *MockBookingService) DeleteAircraft(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockBookingService) CreateFlight(ctx context.Context, req service.CreateFlightRequest) (*database.Flight, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Flight), args.Error(1)
}

func (m *MockBookingService) GetFlight(ctx context.Context, number string) (*database.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Flight), args.Error(1)
}

func (m *MockBookingService) ListFlights(ctx context.Context) ([]database.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Flight), args.Error(1)
}

func (m *MockBookingService) CancelFlight(ctx context.Context, number string) (int, error) {
	args := m.Called(ctx, number)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingService) BookTicket(ctx context.Context, req service.BookTicketRequest) (*database.Ticket, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Ticket), args.Error(1)
}

func (m *MockBookingService) GetTicket(ctx context.Context, number string) (*database.Ticket, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Ticket), args.Error(1)
}

func (m *MockBookingService) ListTickets(ctx context.Context) ([]database.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Ticket), args.Error(1)
}

func (m *MockBookingService) CancelTicket(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockBookingService) CheckIn(ctx context.Context, ticketnumber, flightnumber string) (*database.Seat, error) {
	args := m.Called(ctx, ticketnumber, flightnumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Seat), args.Error(1)
}

func (m *MockBookingService) ListSeats(ctx context.Context, flightnumber string) ([]database.Seat, error) {
	args := m.Called(ctx, flightnumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Seat), args.Error(1)
}

func (m *MockBookingService) ReserveSeat(ctx context.Context, req service.ReserveSeatRequest) (*database.Seat, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Seat), args.Error(1)
}

func (m *MockBookingService) ListNotifications(ctx context.Context, ticketnumber string) ([]database.Notification, error) {
	args := m.Called(ctx, ticketnumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Notification), args.Error(1)
}
