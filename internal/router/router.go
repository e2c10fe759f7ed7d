package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tillik/airlinewebservice/internal/auth"
	"github.com/tillik/airlinewebservice/internal/handlers"
	"github.com/tillik/airlinewebservice/internal/websocket"
)

// SetupRouter creates and configures the HTTP router. Role requirements
// follow the original resource protection: flight administration is
// admin-only, everything else is open to admin and customer alike.
func SetupRouter(h *handlers.Handler, authHandler *auth.Handler, authMW *auth.Middleware, hub *websocket.Hub) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	v1.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	admin := v1.NewRoute().Subrouter()
	admin.Use(authMW.Authenticate, authMW.RequireRoles(auth.RoleAdmin))

	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.Authenticate, authMW.RequireRoles(auth.RoleAdmin, auth.RoleCustomer))

	// Aircraft
	admin.HandleFunc("/aircraft", h.CreateAircraft).Methods(http.MethodPost)
	admin.HandleFunc("/aircraft/{aircraft}", h.DeleteAircraft).Methods(http.MethodDelete)
	authed.HandleFunc("/aircraft", h.ListAircraft).Methods(http.MethodGet)
	authed.HandleFunc("/aircraft/{aircraft}", h.GetAircraft).Methods(http.MethodGet)

	// Flights
	admin.HandleFunc("/flights", h.ListFlights).Methods(http.MethodGet)
	admin.HandleFunc("/flights", h.CreateFlight).Methods(http.MethodPost)
	admin.HandleFunc("/flight/{flightnumber}", h.CancelFlight).Methods(http.MethodDelete)
	authed.HandleFunc("/flight/{flightnumber}", h.GetFlight).Methods(http.MethodGet)

	// Tickets
	authed.HandleFunc("/ticket", h.BookTicket).Methods(http.MethodPost)
	authed.HandleFunc("/tickets", h.ListTickets).Methods(http.MethodGet)
	authed.HandleFunc("/ticket/{ticketnumber}", h.GetTicket).Methods(http.MethodGet)
	authed.HandleFunc("/ticket/{ticketnumber}", h.CancelTicket).Methods(http.MethodDelete)

	// Check-in
	authed.HandleFunc("/checkin", h.CheckIn).Methods(http.MethodPost)

	// Seats
	authed.HandleFunc("/flight/{flightnumber}/seats", h.ListSeats).Methods(http.MethodGet)
	authed.HandleFunc("/seat", h.ReserveSeat).Methods(http.MethodPost)

	// Notifications
	authed.HandleFunc("/notifications/{ticketnumber}", h.ListNotifications).Methods(http.MethodGet)

	// WebSocket seat-event stream
	authed.HandleFunc("/flight/{flightnumber}/ws", hub.Handle)

	return r
}
