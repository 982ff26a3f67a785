package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlightDeparted(t *testing.T) {
	departure := time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC)
	flight := Flight{ID: 1, Departure: departure}

	assert.False(t, flight.Departed(departure.Add(-time.Minute)))
	// Departure instant itself is already too late.
	assert.True(t, flight.Departed(departure))
	assert.True(t, flight.Departed(departure.Add(time.Minute)))
}
