package domain

import "time"

// Sale is one purchase transaction, possibly covering several tickets.
// Counter is nil for online sales.
type Sale struct {
	ReservationCode int64
	CustomerNIF     string
	Counter         *string
	Time            time.Time
}

// Ticket is one passenger's booking on one flight. SeatLabel and
// SerialNumber stay nil until check-in assigns a seat; after check-in both
// are set together and never change again.
type Ticket struct {
	ID              int64
	FlightID        int64
	ReservationCode int64
	PassengerName   string
	PriceCents      int64
	FirstClass      bool
	SeatLabel       *string
	SerialNumber    *string
}

// CheckedIn reports whether the ticket already has a seat assigned.
func (t *Ticket) CheckedIn() bool {
	return t.SeatLabel != nil
}
