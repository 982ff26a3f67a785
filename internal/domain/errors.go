package domain

import "errors"

// Typed business errors. Handlers and callers branch on these with
// errors.Is; nothing anywhere matches on error message text.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyCheckedIn   = errors.New("ticket already checked in")
	ErrNoSeatAvailable    = errors.New("no seat available in this class")
	ErrCapacityExceeded   = errors.New("class capacity exceeded for flight")
	ErrSaleAfterDeparture = errors.New("flight already departed")
	ErrSeatClassMismatch  = errors.New("seat class does not match ticket class")
	ErrAircraftMismatch   = errors.New("seat does not belong to the flight's aircraft")
	ErrSameCity           = errors.New("origin and destination are in the same city")
)

// ErrorKind returns the stable machine-readable kind for an error. Unknown
// errors report as "internal"; their details are logged, not exposed.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrAlreadyCheckedIn):
		return "already_checked_in"
	case errors.Is(err, ErrNoSeatAvailable):
		return "no_seat_available"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrSaleAfterDeparture):
		return "sale_after_departure"
	case errors.Is(err, ErrSeatClassMismatch):
		return "seat_class_mismatch"
	case errors.Is(err, ErrAircraftMismatch):
		return "aircraft_mismatch"
	case errors.Is(err, ErrSameCity):
		return "same_city"
	default:
		return "internal"
	}
}
