package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tillik/airlinewebservice/internal/database"
)

// CreateAircraft handles POST /v1/aircraft
func (h *Handler) CreateAircraft(w http.ResponseWriter, r *http.Request) {
	var req database.Aircraft
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	aircraft, err := h.bookingService.CreateAircraft(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondLocation(w, "/v1/aircraft/"+aircraft.Aircraft)
}

// ListAircraft handles GET /v1/aircraft
func (h *Handler) ListAircraft(w http.ResponseWriter, r *http.Request) {
	aircrafts, err := h.bookingService.ListAircraft(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if aircrafts == nil {
		aircrafts = []database.Aircraft{}
	}
	respondJSON(w, http.StatusOK, aircrafts)
}

// GetAircraft handles GET /v1/aircraft/{aircraft}
func (h *Handler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["aircraft"]
	aircraft, err := h.bookingService.GetAircraft(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, aircraft)
}

// DeleteAircraft handles DELETE /v1/aircraft/{aircraft}
func (h *Handler) DeleteAircraft(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["aircraft"]
	if err := h.bookingService.DeleteAircraft(r.Context(), name); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully deleted aircraft " + name,
	})
}
