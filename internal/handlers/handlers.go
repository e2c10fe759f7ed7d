package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tillik/airlinewebservice/internal/database"
	"github.com/tillik/airlinewebservice/internal/service"
)

// Handler contains the HTTP handlers for the API
type Handler struct {
	bookingService service.BookingService
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService service.BookingService) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondLocation(w http.ResponseWriter, location string) {
	respondJSON(w, http.StatusCreated, map[string]string{"location": location})
}

// statusForError maps domain failures to response codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidTicketOrFlight):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrAircraftNotFound),
		errors.Is(err, database.ErrFlightNotFound),
		errors.Is(err, database.ErrTicketNotFound),
		errors.Is(err, database.ErrSeatNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrAlreadyExists),
		errors.Is(err, database.ErrFlightExists),
		errors.Is(err, database.ErrAircraftInUse),
		errors.Is(err, database.ErrDuplicateBooking),
		errors.Is(err, database.ErrCapacityExceeded),
		errors.Is(err, database.ErrSeatTaken),
		errors.Is(err, database.ErrTicketHasSeat),
		errors.Is(err, database.ErrNoSeatsAvailable),
		errors.Is(err, database.ErrConstraint):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		// Storage faults are reported, not detailed
		respondError(w, status, "internal server error")
		return
	}
	respondError(w, status, err.Error())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
