package domain

import "time"

type Airport struct {
	Code    string
	Name    string
	City    string
	Country string
}

type Aircraft struct {
	SerialNumber string
	Model        string
}

// Seat is one physical seat on an aircraft. Seats are immutable once
// defined; (SerialNumber, Label) is the composite key.
type Seat struct {
	SerialNumber string
	Label        string
	FirstClass   bool
}

type Flight struct {
	ID           int64
	SerialNumber string
	Departure    time.Time
	Arrival      time.Time
	Origin       string
	Destination  string
}

// Departed reports whether the flight has already left at the given instant.
// Sales are accepted strictly before departure, with no boarding cutoff.
func (f *Flight) Departed(now time.Time) bool {
	return !now.Before(f.Departure)
}
