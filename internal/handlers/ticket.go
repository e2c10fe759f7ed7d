package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/service"
)

// BookTicket handles POST /v1/ticket
func (h *Handler) BookTicket(w http.ResponseWriter, r *http.Request) {
	var req service.BookTicketRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticket, err := h.bookingService.BookTicket(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondLocation(w, "/v1/ticket/"+ticket.Number)
}

// ListTickets handles GET /v1/tickets
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.bookingService.ListTickets(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if tickets == nil {
		tickets = []database.Ticket{}
	}
	respondJSON(w, http.StatusOK, tickets)
}

// GetTicket handles GET /v1/ticket/{ticketnumber}
func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["ticketnumber"]
	ticket, err := h.bookingService.GetTicket(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// CancelTicket handles DELETE /v1/ticket/{ticketnumber}
func (h *Handler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["ticketnumber"]
	if err := h.bookingService.CancelTicket(r.Context(), number); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully deleted ticket with number " + number,
	})
}

type checkinRequest struct {
	Ticketnumber string `json:"ticketnumber"`
	Flightnumber string `json:"flightnumber"`
}

// CheckIn handles POST /v1/checkin
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seat, err := h.bookingService.CheckIn(r.Context(), req.Ticketnumber, req.Flightnumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"location": "/v1/ticket/" + req.Ticketnumber,
		"seatcode": seat.Seatcode(),
	})
}

// ListNotifications handles GET /v1/notifications/{ticketnumber}
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["ticketnumber"]
	notifications, err := h.bookingService.ListNotifications(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}
