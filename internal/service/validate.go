package service

import (
	"fmt"
	"regexp"
)

// Validators are compiled once at startup and carry no request state.
var (
	passportPattern     = regexp.MustCompile(`^[A-Z0-9]{7}$`)
	ticketNumberPattern = regexp.MustCompile(`^[A-Z0-9]{7}$`)
	flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	stationPattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	seatLabelPattern    = regexp.MustCompile(`^[A-G]$`)
)

func validatePassportnumber(passport string) error {
	if !passportPattern.MatchString(passport) {
		return fmt.Errorf("%w: passportnumber must be 7 uppercase alphanumeric characters", ErrValidation)
	}
	return nil
}

func validateTicketnumber(number string) error {
	if !ticketNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: ticketnumber must be 7 uppercase alphanumeric characters", ErrValidation)
	}
	return nil
}

func validateFlightnumber(number string) error {
	if !flightNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: flightnumber must be 6 uppercase alphanumeric characters", ErrValidation)
	}
	return nil
}

func validateStation(field, code string) error {
	if !stationPattern.MatchString(code) {
		return fmt.Errorf("%w: %s must be a 3-letter station code", ErrValidation, field)
	}
	return nil
}

func validateSeatPosition(label string, row int) error {
	if !seatLabelPattern.MatchString(label) {
		return fmt.Errorf("%w: seatlabel must be a single letter A-G", ErrValidation)
	}
	if row < 1 || row > seatRowsPerLabel {
		return fmt.Errorf("%w: seatrow must be between 1 and %d", ErrValidation, seatRowsPerLabel)
	}
	return nil
}
