package service

import "errors"

var (
	// ErrValidation marks malformed input detected before any write begins
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTicketOrFlight is returned when a check-in or seat
	// reservation names a ticket and flight that don't match or are not
	// both status valid
	ErrInvalidTicketOrFlight = errors.New("either flight or ticket are invalid")
)
