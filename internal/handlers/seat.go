package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/service"
)

// seatView is the external shape of a seat, with the composite seatcode of
// an assigned seat
type seatView struct {
	Flightnumber string `json:"flightnumber"`
	Seatlabel    string `json:"seatlabel"`
	Seatrow      int    `json:"seatrow"`
	Seatcode     string `json:"seatcode,omitempty"`
	Checkedin    bool   `json:"checkedin"`
}

func newSeatView(seat database.Seat) seatView {
	return seatView{
		Flightnumber: seat.Flightnumber,
		Seatlabel:    seat.Seatlabel,
		Seatrow:      seat.Seatrow,
		Seatcode:     seat.Seatcode(),
		Checkedin:    seat.Checkedin,
	}
}

// ListSeats handles GET /v1/flight/{flightnumber}/seats
func (h *Handler) ListSeats(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["flightnumber"]
	seats, err := h.bookingService.ListSeats(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]seatView, 0, len(seats))
	for _, seat := range seats {
		views = append(views, newSeatView(seat))
	}
	respondJSON(w, http.StatusOK, views)
}

// ReserveSeat handles POST /v1/seat
func (h *Handler) ReserveSeat(w http.ResponseWriter, r *http.Request) {
	var req service.ReserveSeatRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seat, err := h.bookingService.ReserveSeat(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, newSeatView(*seat))
}
