package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/service"
)

// CreateFlight handles POST /v1/flights
func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFlightRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flight, err := h.bookingService.CreateFlight(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondLocation(w, "/v1/flight/"+flight.Number)
}

// ListFlights handles GET /v1/flights
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.bookingService.ListFlights(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if flights == nil {
		flights = []database.Flight{}
	}
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /v1/flight/{flightnumber}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["flightnumber"]
	flight, err := h.bookingService.GetFlight(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// CancelFlight handles DELETE /v1/flight/{flightnumber}
func (h *Handler) CancelFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["flightnumber"]
	if _, err := h.bookingService.CancelFlight(r.Context(), number); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully cancelled flight and all seats",
	})
}
